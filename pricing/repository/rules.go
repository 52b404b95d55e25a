package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/store/rules"
)

type ruleRepository struct {
	q rules.Querier
}

// absent turns pgx.ErrNoRows into a nil row and wraps everything else.
func absent(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return apierr.Repository(op, err)
}

func (r *ruleRepository) GetGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error) {
	row, err := r.q.GetGlobalDefaults(ctx)
	if err != nil {
		return nil, absent("get global defaults", err)
	}
	return convertDBGlobalDefaults(row), nil
}

func (r *ruleRepository) FindZonePricing(ctx context.Context, governorateID string) (*model.ZonePricing, error) {
	row, err := r.q.GetZonePricingByGovernorate(ctx, governorateID)
	if err != nil {
		return nil, absent("find zone pricing", err)
	}
	return convertDBZonePricing(row), nil
}

func (r *ruleRepository) FindClientZoneOverride(ctx context.Context, clientID, governorateID string) (*model.ClientZoneOverride, error) {
	row, err := r.q.FindClientZoneOverride(ctx, rules.FindClientZoneOverrideParams{
		ClientID:      clientID,
		GovernorateID: governorateID,
	})
	if err != nil {
		return nil, absent("find client zone override", err)
	}
	return convertDBClientOverride(row), nil
}

func (r *ruleRepository) FindPackageExtra(ctx context.Context, clientID *string, packageType model.PackageType) (*model.PackageTypeExtra, error) {
	var (
		row rules.PackageTypeExtra
		err error
	)
	if clientID != nil {
		row, err = r.q.GetClientPackageExtra(ctx, rules.GetClientPackageExtraParams{
			ClientID:    toText(clientID),
			PackageType: string(packageType),
		})
	} else {
		row, err = r.q.GetGlobalPackageExtra(ctx, string(packageType))
	}
	if err != nil {
		return nil, absent("find package extra", err)
	}
	return convertDBPackageExtra(row), nil
}

func (r *ruleRepository) ListZonePricing(ctx context.Context) ([]model.ZonePricing, error) {
	rows, err := r.q.ListZonePricing(ctx)
	if err != nil {
		return nil, apierr.Repository("list zone pricing", err)
	}
	zones := make([]model.ZonePricing, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, *convertDBZonePricing(row))
	}
	return zones, nil
}

func (r *ruleRepository) ListClientOverrides(ctx context.Context, clientID *string) ([]model.ClientZoneOverride, error) {
	var (
		rows []rules.ClientZoneOverride
		err  error
	)
	if clientID != nil {
		rows, err = r.q.ListClientZoneOverrides(ctx, *clientID)
	} else {
		rows, err = r.q.ListAllClientZoneOverrides(ctx)
	}
	if err != nil {
		return nil, apierr.Repository("list client zone overrides", err)
	}
	overrides := make([]model.ClientZoneOverride, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, *convertDBClientOverride(row))
	}
	return overrides, nil
}

func (r *ruleRepository) ListPackageExtras(ctx context.Context, clientID *string) ([]model.PackageTypeExtra, error) {
	var (
		rows []rules.PackageTypeExtra
		err  error
	)
	if clientID != nil {
		rows, err = r.q.ListPackageExtrasForClient(ctx, toText(clientID))
	} else {
		rows, err = r.q.ListPackageExtras(ctx)
	}
	if err != nil {
		return nil, apierr.Repository("list package extras", err)
	}
	extras := make([]model.PackageTypeExtra, 0, len(rows))
	for _, row := range rows {
		extras = append(extras, *convertDBPackageExtra(row))
	}
	return extras, nil
}

func (r *ruleRepository) LockKey(ctx context.Context, key string) error {
	return apierr.Repository("lock rule key", r.q.LockRuleKey(ctx, key))
}

func (r *ruleRepository) LockGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error) {
	row, err := r.q.GetGlobalDefaultsForUpdate(ctx)
	if err != nil {
		return nil, absent("lock global defaults", err)
	}
	return convertDBGlobalDefaults(row), nil
}

func (r *ruleRepository) UpdateGlobalDefaults(ctx context.Context, fee model.CurrencyAmount, updatedBy string) (*model.GlobalDefaults, error) {
	row, err := r.q.UpdateGlobalDefaults(ctx, rules.UpdateGlobalDefaultsParams{
		DefaultFeeUsd: toNumeric(fee.USD),
		DefaultFeeLbp: toNumeric(fee.LBP),
		UpdatedBy:     updatedBy,
	})
	if err != nil {
		return nil, apierr.Repository("update global defaults", err)
	}
	return convertDBGlobalDefaults(row), nil
}

func (r *ruleRepository) LockZonePricing(ctx context.Context, governorateID string) (*model.ZonePricing, error) {
	row, err := r.q.GetZonePricingByGovernorateForUpdate(ctx, governorateID)
	if err != nil {
		return nil, absent("lock zone pricing", err)
	}
	return convertDBZonePricing(row), nil
}

func (r *ruleRepository) CreateZonePricing(ctx context.Context, governorateID string, fee model.CurrencyAmount) (*model.ZonePricing, error) {
	row, err := r.q.CreateZonePricing(ctx, rules.CreateZonePricingParams{
		ID:            uuid.NewString(),
		GovernorateID: governorateID,
		FeeUsd:        toNumeric(fee.USD),
		FeeLbp:        toNumeric(fee.LBP),
	})
	if err != nil {
		if apierr.IsUniqueViolation(err) {
			return nil, apierr.Conflict("zone pricing already exists for governorate " + governorateID)
		}
		return nil, apierr.Repository("create zone pricing", err)
	}
	return convertDBZonePricing(row), nil
}

func (r *ruleRepository) UpdateZonePricing(ctx context.Context, id string, fee model.CurrencyAmount) (*model.ZonePricing, error) {
	row, err := r.q.UpdateZonePricing(ctx, rules.UpdateZonePricingParams{
		ID:     id,
		FeeUsd: toNumeric(fee.USD),
		FeeLbp: toNumeric(fee.LBP),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound("zone pricing", id)
		}
		return nil, apierr.Repository("update zone pricing", err)
	}
	return convertDBZonePricing(row), nil
}

func (r *ruleRepository) DeleteZonePricing(ctx context.Context, id string) error {
	n, err := r.q.DeleteZonePricing(ctx, id)
	if err != nil {
		return apierr.Repository("delete zone pricing", err)
	}
	if n == 0 {
		return apierr.NotFound("zone pricing", id)
	}
	return nil
}

func (r *ruleRepository) LockClientOverride(ctx context.Context, id string) (*model.ClientZoneOverride, error) {
	row, err := r.q.GetClientZoneOverrideForUpdate(ctx, id)
	if err != nil {
		return nil, absent("lock client zone override", err)
	}
	return convertDBClientOverride(row), nil
}

func (r *ruleRepository) CreateClientOverride(ctx context.Context, clientID string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error) {
	row, err := r.q.CreateClientZoneOverride(ctx, rules.CreateClientZoneOverrideParams{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		GovernorateIds: governorateIDs,
		FeeUsd:         toNumeric(fee.USD),
		FeeLbp:         toNumeric(fee.LBP),
	})
	if err != nil {
		return nil, apierr.Repository("create client zone override", err)
	}
	return convertDBClientOverride(row), nil
}

func (r *ruleRepository) UpdateClientOverride(ctx context.Context, id string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error) {
	row, err := r.q.UpdateClientZoneOverride(ctx, rules.UpdateClientZoneOverrideParams{
		ID:             id,
		GovernorateIds: governorateIDs,
		FeeUsd:         toNumeric(fee.USD),
		FeeLbp:         toNumeric(fee.LBP),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound("client zone override", id)
		}
		return nil, apierr.Repository("update client zone override", err)
	}
	return convertDBClientOverride(row), nil
}

func (r *ruleRepository) DeleteClientOverride(ctx context.Context, id string) error {
	n, err := r.q.DeleteClientZoneOverride(ctx, id)
	if err != nil {
		return apierr.Repository("delete client zone override", err)
	}
	if n == 0 {
		return apierr.NotFound("client zone override", id)
	}
	return nil
}

func (r *ruleRepository) LockPackageExtra(ctx context.Context, id string) (*model.PackageTypeExtra, error) {
	row, err := r.q.GetPackageExtraForUpdate(ctx, id)
	if err != nil {
		return nil, absent("lock package extra", err)
	}
	return convertDBPackageExtra(row), nil
}

func (r *ruleRepository) CreatePackageExtra(ctx context.Context, clientID *string, packageType model.PackageType, extra model.CurrencyAmount) (*model.PackageTypeExtra, error) {
	row, err := r.q.CreatePackageExtra(ctx, rules.CreatePackageExtraParams{
		ID:          uuid.NewString(),
		ClientID:    toText(clientID),
		PackageType: string(packageType),
		ExtraUsd:    toNumeric(extra.USD),
		ExtraLbp:    toNumeric(extra.LBP),
	})
	if err != nil {
		if apierr.IsUniqueViolation(err) {
			return nil, apierr.Conflict("package extra already exists for " + string(packageType))
		}
		return nil, apierr.Repository("create package extra", err)
	}
	return convertDBPackageExtra(row), nil
}

func (r *ruleRepository) UpdatePackageExtra(ctx context.Context, id string, extra model.CurrencyAmount) (*model.PackageTypeExtra, error) {
	row, err := r.q.UpdatePackageExtra(ctx, rules.UpdatePackageExtraParams{
		ID:       id,
		ExtraUsd: toNumeric(extra.USD),
		ExtraLbp: toNumeric(extra.LBP),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound("package extra", id)
		}
		return nil, apierr.Repository("update package extra", err)
	}
	return convertDBPackageExtra(row), nil
}

func (r *ruleRepository) DeletePackageExtra(ctx context.Context, id string) error {
	n, err := r.q.DeletePackageExtra(ctx, id)
	if err != nil {
		return apierr.Repository("delete package extra", err)
	}
	if n == 0 {
		return apierr.NotFound("package extra", id)
	}
	return nil
}
