package admin

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) GetGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error) {
	var defaults *model.GlobalDefaults
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		defaults, err = tx.Rules.GetGlobalDefaults(ctx)
		return err
	})
	if err != nil {
		rlog.Error("failed to get global defaults", "error", err)
		return nil, apierr.Repository("get global defaults", err)
	}
	if defaults == nil {
		return nil, apierr.NotFound("global defaults", "singleton")
	}
	return defaults, nil
}

func (b *business) SetGlobalDefaults(ctx context.Context, input GlobalDefaultsInput) (*model.GlobalDefaults, error) {
	fields := apierr.FieldErrors{}
	checkAmount(fields, "defaultFee", input.Fee)
	checkActor(fields, input.ChangedBy)
	checkVersion(fields, input.ExpectedVersion)
	if err := validationResult("invalid global defaults", fields); err != nil {
		return nil, err
	}

	var updated *model.GlobalDefaults
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		current, err := tx.Rules.LockGlobalDefaults(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			return apierr.NotFound("global defaults", "singleton")
		}
		if err := staleVersion("global defaults", input.ExpectedVersion, current.Version); err != nil {
			return err
		}

		updated, err = tx.Rules.UpdateGlobalDefaults(ctx, input.Fee, input.ChangedBy)
		if err != nil {
			return err
		}

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, model.RuleChange{
			PricingType: model.PricingTypeGlobal,
			Action:      model.ChangeActionUpdate,
			EntityID:    "global",
			Old:         current,
			New:         updated,
			ChangedBy:   input.ChangedBy,
		})
		return err
	})
	if err != nil {
		rlog.Error("failed to set global defaults", "error", err, "changed_by", input.ChangedBy)
		return nil, apierr.Repository("set global defaults", err)
	}

	rlog.Info("global defaults updated", "fee", updated.DefaultFee.String(), "version", updated.Version, "changed_by", input.ChangedBy)
	return updated, nil
}
