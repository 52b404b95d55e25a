package admin

import (
	"context"
	"slices"
	"strings"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) ListClientOverrides(ctx context.Context, clientID *string) ([]model.ClientZoneOverride, error) {
	var overrides []model.ClientZoneOverride
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		overrides, err = tx.Rules.ListClientOverrides(ctx, clientID)
		return err
	})
	if err != nil {
		rlog.Error("failed to list client zone overrides", "error", err)
		return nil, apierr.Repository("list client zone overrides", err)
	}
	return overrides, nil
}

// UpsertClientOverride keeps a client's governorate sets disjoint. The check
// runs under a per-client advisory lock so two writers cannot both pass it.
func (b *business) UpsertClientOverride(ctx context.Context, input ClientOverrideInput) (*model.ClientZoneOverride, error) {
	fields := apierr.FieldErrors{}
	if input.ID != nil && *input.ID == "" {
		fields["id"] = "must not be empty"
	}
	if input.ClientID == "" {
		fields["clientId"] = "is required"
	}
	if len(input.GovernorateIDs) == 0 {
		fields["governorateIds"] = "must not be empty"
	} else if slices.Contains(input.GovernorateIDs, "") {
		fields["governorateIds"] = "must not contain empty ids"
	}
	checkAmount(fields, "fee", input.Fee)
	checkActor(fields, input.ChangedBy)
	checkVersion(fields, input.ExpectedVersion)
	if input.ID == nil && input.ExpectedVersion != nil {
		fields["expectedVersion"] = "only applies to existing overrides"
	}
	if err := validationResult("invalid client zone override", fields); err != nil {
		return nil, err
	}

	governorateIDs := slices.Compact(slices.Sorted(slices.Values(input.GovernorateIDs)))

	var override *model.ClientZoneOverride
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		if err := tx.Rules.LockKey(ctx, "client-override:"+input.ClientID); err != nil {
			return err
		}

		var current *model.ClientZoneOverride
		if input.ID != nil {
			var err error
			if current, err = tx.Rules.LockClientOverride(ctx, *input.ID); err != nil {
				return err
			}
			if current == nil {
				return apierr.NotFound("client zone override", *input.ID)
			}
			if current.ClientID != input.ClientID {
				return apierr.Validation("override belongs to another client", apierr.FieldErrors{
					"clientId": "does not match override " + current.ID,
				})
			}
			if err := staleVersion("client zone override", input.ExpectedVersion, current.Version); err != nil {
				return err
			}
		}

		existing, err := tx.Rules.ListClientOverrides(ctx, &input.ClientID)
		if err != nil {
			return err
		}
		for _, other := range existing {
			if current != nil && other.ID == current.ID {
				continue
			}
			if shared := other.Overlap(governorateIDs); len(shared) > 0 {
				return apierr.Conflict("governorates " + strings.Join(shared, ", ") +
					" are already covered by override " + other.ID + " for client " + input.ClientID)
			}
		}

		change := model.RuleChange{
			PricingType: model.PricingTypeClientZone,
			ChangedBy:   input.ChangedBy,
		}
		if current == nil {
			override, err = tx.Rules.CreateClientOverride(ctx, input.ClientID, governorateIDs, input.Fee)
			change.Action = model.ChangeActionInsert
		} else {
			override, err = tx.Rules.UpdateClientOverride(ctx, current.ID, governorateIDs, input.Fee)
			change.Action = model.ChangeActionUpdate
			change.Old = current
		}
		if err != nil {
			return err
		}
		change.EntityID = override.ID
		change.New = override

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, change)
		return err
	})
	if err != nil {
		rlog.Error("failed to upsert client zone override", "error", err, "client_id", input.ClientID)
		return nil, apierr.Repository("upsert client zone override", err)
	}
	return override, nil
}

func (b *business) DeleteClientOverride(ctx context.Context, id string, target Target) error {
	fields := apierr.FieldErrors{}
	if id == "" {
		fields["id"] = "is required"
	}
	checkActor(fields, target.ChangedBy)
	checkVersion(fields, target.ExpectedVersion)
	if err := validationResult("invalid client zone override deletion", fields); err != nil {
		return err
	}

	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		current, err := tx.Rules.LockClientOverride(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return apierr.NotFound("client zone override", id)
		}
		if err := staleVersion("client zone override", target.ExpectedVersion, current.Version); err != nil {
			return err
		}
		if err := tx.Rules.DeleteClientOverride(ctx, id); err != nil {
			return err
		}

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, model.RuleChange{
			PricingType: model.PricingTypeClientZone,
			Action:      model.ChangeActionDelete,
			EntityID:    id,
			Old:         current,
			ChangedBy:   target.ChangedBy,
		})
		return err
	})
	if err != nil {
		rlog.Error("failed to delete client zone override", "error", err, "override_id", id)
		return apierr.Repository("delete client zone override", err)
	}
	return nil
}
