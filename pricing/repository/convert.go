package repository

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"logistics.app/pricing/model"
	"logistics.app/pricing/store/changelogs"
	"logistics.app/pricing/store/rules"
	"logistics.app/pricing/store/snapshots"
)

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil || n.NaN {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func toAmount(usd, lbp pgtype.Numeric) model.CurrencyAmount {
	return model.CurrencyAmount{USD: fromNumeric(usd), LBP: fromNumeric(lbp)}
}

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func fromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func convertDBGlobalDefaults(row rules.PricingGlobalDefault) *model.GlobalDefaults {
	return &model.GlobalDefaults{
		DefaultFee: toAmount(row.DefaultFeeUsd, row.DefaultFeeLbp),
		Version:    row.Version,
		UpdatedAt:  row.UpdatedAt.Time,
		UpdatedBy:  row.UpdatedBy,
	}
}

func convertDBZonePricing(row rules.ZonePricing) *model.ZonePricing {
	return &model.ZonePricing{
		ID:            row.ID,
		GovernorateID: row.GovernorateID,
		Fee:           toAmount(row.FeeUsd, row.FeeLbp),
		Version:       row.Version,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func convertDBClientOverride(row rules.ClientZoneOverride) *model.ClientZoneOverride {
	return &model.ClientZoneOverride{
		ID:             row.ID,
		ClientID:       row.ClientID,
		GovernorateIDs: row.GovernorateIds,
		Fee:            toAmount(row.FeeUsd, row.FeeLbp),
		Version:        row.Version,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func convertDBPackageExtra(row rules.PackageTypeExtra) *model.PackageTypeExtra {
	clientID := fromText(row.ClientID)
	return &model.PackageTypeExtra{
		ID:          row.ID,
		Scope:       model.ScopeOf(clientID),
		ClientID:    clientID,
		PackageType: model.PackageType(row.PackageType),
		Extra:       toAmount(row.ExtraUsd, row.ExtraLbp),
		Version:     row.Version,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func convertDBSnapshot(row snapshots.OrderPriceSnapshot) (*model.OrderPriceSnapshot, error) {
	snapshot := &model.OrderPriceSnapshot{
		ID:            row.ID,
		OrderID:       row.OrderID,
		ClientID:      row.ClientID,
		GovernorateID: fromText(row.GovernorateID),
		CityID:        fromText(row.CityID),
		Base:          toAmount(row.BaseUsd, row.BaseLbp),
		Extra:         toAmount(row.ExtraUsd, row.ExtraLbp),
		Total:         toAmount(row.TotalUsd, row.TotalLbp),
		BaseSource:    model.BaseSource(row.BaseSource),
		ExtraSource:   model.ExtraSource(row.ExtraSource),
		CalculatedAt:  row.CalculatedAt.Time,
	}

	if row.PackageType.Valid {
		packageType := model.PackageType(row.PackageType.String)
		snapshot.PackageType = &packageType
	}

	if len(row.RuleDetails) > 0 {
		if err := json.Unmarshal(row.RuleDetails, &snapshot.RuleDetails); err != nil {
			return nil, err
		}
	}

	return snapshot, nil
}

func convertDBChangeLog(row changelogs.PricingChangeLog) *model.ChangeLogEntry {
	entry := &model.ChangeLogEntry{
		ID:            row.ID,
		PricingType:   model.PricingType(row.PricingType),
		Action:        model.ChangeAction(row.Action),
		EntityID:      row.EntityID,
		ChangedFields: row.ChangedFields,
		ChangedBy:     row.ChangedBy,
		CreatedAt:     row.CreatedAt.Time,
	}
	if len(row.OldValues) > 0 {
		entry.OldValues = json.RawMessage(row.OldValues)
	}
	if len(row.NewValues) > 0 {
		entry.NewValues = json.RawMessage(row.NewValues)
	}
	if entry.ChangedFields == nil {
		entry.ChangedFields = []string{}
	}
	return entry
}
