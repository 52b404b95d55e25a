package admin

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) ListPackageExtras(ctx context.Context, clientID *string) ([]model.PackageTypeExtra, error) {
	var extras []model.PackageTypeExtra
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		extras, err = tx.Rules.ListPackageExtras(ctx, clientID)
		return err
	})
	if err != nil {
		rlog.Error("failed to list package extras", "error", err)
		return nil, apierr.Repository("list package extras", err)
	}
	return extras, nil
}

func (b *business) UpsertPackageExtra(ctx context.Context, input PackageExtraInput) (*model.PackageTypeExtra, error) {
	fields := apierr.FieldErrors{}
	if input.ClientID != nil && *input.ClientID == "" {
		fields["clientId"] = "must not be empty"
	}
	if !input.PackageType.Valid() {
		fields["packageType"] = "must be one of Parcel, Document, Bulky"
	}
	checkAmount(fields, "extra", input.Extra)
	checkActor(fields, input.ChangedBy)
	checkVersion(fields, input.ExpectedVersion)
	if err := validationResult("invalid package extra", fields); err != nil {
		return nil, err
	}

	scopeKey := "global"
	if input.ClientID != nil {
		scopeKey = "client:" + *input.ClientID
	}

	var extra *model.PackageTypeExtra
	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		if err := tx.Rules.LockKey(ctx, "package-extra:"+scopeKey+":"+string(input.PackageType)); err != nil {
			return err
		}

		found, err := tx.Rules.FindPackageExtra(ctx, input.ClientID, input.PackageType)
		if err != nil {
			return err
		}

		change := model.RuleChange{
			PricingType: model.PricingTypePackageExtra,
			ChangedBy:   input.ChangedBy,
		}

		if found == nil {
			if input.ExpectedVersion != nil {
				return apierr.NotFound("package extra", scopeKey+"/"+string(input.PackageType))
			}
			if extra, err = tx.Rules.CreatePackageExtra(ctx, input.ClientID, input.PackageType, input.Extra); err != nil {
				return err
			}
			change.Action = model.ChangeActionInsert
		} else {
			current, err := tx.Rules.LockPackageExtra(ctx, found.ID)
			if err != nil {
				return err
			}
			if current == nil {
				return apierr.NotFound("package extra", found.ID)
			}
			if err := staleVersion("package extra", input.ExpectedVersion, current.Version); err != nil {
				return err
			}
			if extra, err = tx.Rules.UpdatePackageExtra(ctx, current.ID, input.Extra); err != nil {
				return err
			}
			change.Action = model.ChangeActionUpdate
			change.Old = current
		}
		change.EntityID = extra.ID
		change.New = extra

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, change)
		return err
	})
	if err != nil {
		rlog.Error("failed to upsert package extra", "error", err, "scope", scopeKey, "package_type", input.PackageType)
		return nil, apierr.Repository("upsert package extra", err)
	}
	return extra, nil
}

func (b *business) DeletePackageExtra(ctx context.Context, id string, target Target) error {
	fields := apierr.FieldErrors{}
	if id == "" {
		fields["id"] = "is required"
	}
	checkActor(fields, target.ChangedBy)
	checkVersion(fields, target.ExpectedVersion)
	if err := validationResult("invalid package extra deletion", fields); err != nil {
		return err
	}

	err := b.transactor.WithinTx(ctx, func(tx repository.Tx) error {
		current, err := tx.Rules.LockPackageExtra(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return apierr.NotFound("package extra", id)
		}
		if err := staleVersion("package extra", target.ExpectedVersion, current.Version); err != nil {
			return err
		}
		if err := tx.Rules.DeletePackageExtra(ctx, id); err != nil {
			return err
		}

		_, err = b.changeLog.Record(ctx, tx.ChangeLog, model.RuleChange{
			PricingType: model.PricingTypePackageExtra,
			Action:      model.ChangeActionDelete,
			EntityID:    id,
			Old:         current,
			ChangedBy:   target.ChangedBy,
		})
		return err
	})
	if err != nil {
		rlog.Error("failed to delete package extra", "error", err, "extra_id", id)
		return apierr.Repository("delete package extra", err)
	}
	return nil
}
