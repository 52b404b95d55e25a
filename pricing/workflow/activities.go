package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/business/resolver"
	"logistics.app/pricing/business/snapshot"
	"logistics.app/pricing/model"
)

type ActivityDependencies struct {
	Resolver  resolver.Business
	Snapshots snapshot.Business
}

var activityDeps *ActivityDependencies

func SetActivityDependencies(resolverBusiness resolver.Business, snapshotBusiness snapshot.Business) {
	activityDeps = &ActivityDependencies{
		Resolver:  resolverBusiness,
		Snapshots: snapshotBusiness,
	}
}

func dependenciesReady() error {
	if activityDeps == nil || activityDeps.Resolver == nil || activityDeps.Snapshots == nil {
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return nil
}

// asActivityError stops retries for input the business layer rejected.
func asActivityError(message string, err error) error {
	switch apierr.KindOf(err) {
	case apierr.KindValidation, apierr.KindConflict, apierr.KindNotFound:
		return temporal.NewNonRetryableApplicationError(message, string(apierr.KindOf(err)), err)
	}
	return err
}

// ResolveFeeActivity prices the order against the current rules.
func ResolveFeeActivity(ctx context.Context, req model.ResolveRequest) (*model.PriceBreakdown, error) {
	logger := activity.GetLogger(ctx)

	if err := dependenciesReady(); err != nil {
		logger.Error("Activity dependencies not set")
		return nil, err
	}

	breakdown, err := activityDeps.Resolver.Resolve(ctx, req)
	if err != nil {
		logger.Error("Failed to resolve delivery fee", "error", err)
		return nil, asActivityError("failed to resolve delivery fee", err)
	}

	logger.Info("Resolved delivery fee", "baseSource", breakdown.BaseSource, "extraSource", breakdown.ExtraSource)
	return breakdown, nil
}

// RecordOrderPriceActivity stores the accepted quote. Retries are safe: the
// recorder returns the first stored snapshot on every later attempt.
func RecordOrderPriceActivity(ctx context.Context, orderID string, input model.SnapshotInput) (*model.OrderPriceSnapshot, error) {
	logger := activity.GetLogger(ctx)

	if err := dependenciesReady(); err != nil {
		logger.Error("Activity dependencies not set")
		return nil, err
	}

	stored, created, err := activityDeps.Snapshots.RecordIfAbsent(ctx, orderID, input)
	if err != nil {
		logger.Error("Failed to record order price", "orderID", orderID, "error", err)
		return nil, asActivityError("failed to record order price", err)
	}

	logger.Info("Order price recorded", "orderID", orderID, "snapshotID", stored.ID, "created", created)
	return stored, nil
}
