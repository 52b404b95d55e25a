package admin

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) ListZonePricing(ctx context.Context) ([]model.ZonePricing, error) {
	var zones []model.ZonePricing
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		zones, err = tx.Rules.ListZonePricing(ctx)
		return err
	})
	if err != nil {
		rlog.Error("failed to list zone pricing", "error", err)
		return nil, apierr.Repository("list zone pricing", err)
	}
	return zones, nil
}

func (b *business) UpsertZonePricing(ctx context.Context, input ZonePricingInput) (*model.ZonePricing, error) {
	fields := apierr.FieldErrors{}
	checkZoneInput(fields, "", input)
	if err := validationResult("invalid zone pricing", fields); err != nil {
		return nil, err
	}

	var zone *model.ZonePricing
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		zone, err = b.upsertZone(ctx, tx, input)
		return err
	})
	if err != nil {
		rlog.Error("failed to upsert zone pricing", "error", err, "governorate_id", input.GovernorateID)
		return nil, apierr.Repository("upsert zone pricing", err)
	}
	return zone, nil
}

// BatchUpsertZonePricing applies every row or none. Each row gets its own
// change log entry.
func (b *business) BatchUpsertZonePricing(ctx context.Context, inputs []ZonePricingInput) ([]model.ZonePricing, error) {
	fields := apierr.FieldErrors{}
	if len(inputs) == 0 {
		fields["rows"] = "must not be empty"
	}
	seen := make(map[string]int, len(inputs))
	for i, input := range inputs {
		prefix := fmt.Sprintf("rows[%d].", i)
		checkZoneInput(fields, prefix, input)
		if first, ok := seen[input.GovernorateID]; ok && input.GovernorateID != "" {
			fields[prefix+"governorateId"] = fmt.Sprintf("duplicates rows[%d]", first)
		} else {
			seen[input.GovernorateID] = i
		}
	}
	if err := validationResult("invalid zone pricing batch", fields); err != nil {
		return nil, err
	}

	// Rows are applied in governorate order so concurrent batches take their
	// zone locks in the same order; results keep the request order.
	order := make([]int, len(inputs))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(inputs[a].GovernorateID, inputs[b].GovernorateID)
	})

	zones := make([]model.ZonePricing, len(inputs))
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		for _, i := range order {
			zone, err := b.upsertZone(ctx, tx, inputs[i])
			if err != nil {
				return err
			}
			zones[i] = *zone
		}
		return nil
	})
	if err != nil {
		rlog.Error("failed to batch upsert zone pricing", "error", err, "rows", len(inputs))
		return nil, apierr.Repository("batch upsert zone pricing", err)
	}

	rlog.Info("zone pricing batch applied", "rows", len(zones))
	return zones, nil
}

func (b *business) upsertZone(ctx context.Context, tx repository.Tx, input ZonePricingInput) (*model.ZonePricing, error) {
	// The advisory lock closes the insert race the row lock cannot cover.
	if err := tx.Rules.LockKey(ctx, "zone:"+input.GovernorateID); err != nil {
		return nil, err
	}

	current, err := tx.Rules.LockZonePricing(ctx, input.GovernorateID)
	if err != nil {
		return nil, err
	}

	change := model.RuleChange{
		PricingType: model.PricingTypeZone,
		ChangedBy:   input.ChangedBy,
	}

	var zone *model.ZonePricing
	if current == nil {
		if input.ExpectedVersion != nil {
			return nil, apierr.NotFound("zone pricing", input.GovernorateID)
		}
		if zone, err = tx.Rules.CreateZonePricing(ctx, input.GovernorateID, input.Fee); err != nil {
			return nil, err
		}
		change.Action = model.ChangeActionInsert
	} else {
		if err := staleVersion("zone pricing", input.ExpectedVersion, current.Version); err != nil {
			return nil, err
		}
		if zone, err = tx.Rules.UpdateZonePricing(ctx, current.ID, input.Fee); err != nil {
			return nil, err
		}
		change.Action = model.ChangeActionUpdate
		change.Old = current
	}
	change.EntityID = zone.ID
	change.New = zone

	if _, err := b.changeLog.Record(ctx, tx.ChangeLog, change); err != nil {
		return nil, err
	}
	return zone, nil
}

func (b *business) DeleteZonePricing(ctx context.Context, governorateID string, target Target) error {
	fields := apierr.FieldErrors{}
	if governorateID == "" {
		fields["governorateId"] = "is required"
	}
	checkActor(fields, target.ChangedBy)
	checkVersion(fields, target.ExpectedVersion)
	if err := validationResult("invalid zone pricing deletion", fields); err != nil {
		return err
	}

	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		current, err := tx.Rules.LockZonePricing(ctx, governorateID)
		if err != nil {
			return err
		}
		if current == nil {
			return apierr.NotFound("zone pricing", governorateID)
		}
		if err := staleVersion("zone pricing", target.ExpectedVersion, current.Version); err != nil {
			return err
		}
		if err := tx.Rules.DeleteZonePricing(ctx, current.ID); err != nil {
			return err
		}

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, model.RuleChange{
			PricingType: model.PricingTypeZone,
			Action:      model.ChangeActionDelete,
			EntityID:    current.ID,
			Old:         current,
			ChangedBy:   target.ChangedBy,
		})
		return err
	})
	if err != nil {
		rlog.Error("failed to delete zone pricing", "error", err, "governorate_id", governorateID)
		return apierr.Repository("delete zone pricing", err)
	}
	return nil
}

func checkZoneInput(fields apierr.FieldErrors, prefix string, input ZonePricingInput) {
	if input.GovernorateID == "" {
		fields[prefix+"governorateId"] = "is required"
	}
	checkAmount(fields, prefix+"fee", input.Fee)
	if input.ChangedBy == "" {
		fields["changedBy"] = "is required"
	}
	if input.ExpectedVersion != nil && *input.ExpectedVersion < 1 {
		fields[prefix+"expectedVersion"] = "must be positive"
	}
}
