package snapshot

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) RecordIfAbsent(ctx context.Context, orderID string, input model.SnapshotInput) (*model.OrderPriceSnapshot, bool, error) {
	if err := validateInput(orderID, input); err != nil {
		return nil, false, err
	}

	breakdown := input.Breakdown
	candidate := model.OrderPriceSnapshot{
		OrderID:       orderID,
		ClientID:      input.ClientID,
		GovernorateID: input.GovernorateID,
		CityID:        input.CityID,
		PackageType:   input.PackageType,
		Base:          breakdown.Base,
		Extra:         breakdown.Extra,
		Total:         breakdown.Total,
		BaseSource:    breakdown.BaseSource,
		ExtraSource:   breakdown.ExtraSource,
		RuleDetails:   breakdown.RuleDetails,
		CalculatedAt:  b.now(),
	}

	var (
		stored  *model.OrderPriceSnapshot
		created bool
	)
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		stored, created, err = tx.Snapshots.InsertSnapshotIfAbsent(ctx, candidate)
		return err
	})
	if err != nil {
		rlog.Error("failed to record order price snapshot", "error", err, "order_id", orderID)
		return nil, false, apierr.Repository("record order price snapshot", err)
	}

	if !created {
		rlog.Info("order price already recorded, returning stored snapshot",
			"order_id", orderID,
			"snapshot_id", stored.ID,
			"stored_total", stored.Total.String(),
			"offered_total", breakdown.Total.String(),
		)
	}

	return stored, created, nil
}

func validateInput(orderID string, input model.SnapshotInput) error {
	fields := apierr.FieldErrors{}
	if orderID == "" {
		fields["orderId"] = "is required"
	}
	if input.ClientID == "" {
		fields["clientId"] = "is required"
	}
	if input.PackageType != nil && !input.PackageType.Valid() {
		fields["packageType"] = "must be one of Parcel, Document, Bulky"
	}

	breakdown := input.Breakdown
	for name, amount := range map[string]model.CurrencyAmount{
		"breakdown.base":  breakdown.Base,
		"breakdown.extra": breakdown.Extra,
		"breakdown.total": breakdown.Total,
	} {
		for k, msg := range amount.Violations() {
			fields[name+"."+k] = msg
		}
	}
	if !breakdown.Total.Equal(breakdown.Base.Add(breakdown.Extra)) {
		fields["breakdown.total"] = "must equal base plus extra"
	}

	switch breakdown.BaseSource {
	case model.BaseSourceGlobalDefault, model.BaseSourceZonePricing, model.BaseSourceClientZoneOverride:
	default:
		fields["breakdown.baseSource"] = "unknown base source"
	}
	switch breakdown.ExtraSource {
	case model.ExtraSourceNone, model.ExtraSourceGlobal, model.ExtraSourceClient:
	default:
		fields["breakdown.extraSource"] = "unknown extra source"
	}

	if len(fields) > 0 {
		return apierr.Validation("invalid order price snapshot", fields)
	}
	return nil
}
