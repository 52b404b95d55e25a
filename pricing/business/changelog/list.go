package changelog

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) List(ctx context.Context, filter model.ChangeLogFilter, limit int32) (*model.ChangeLogPage, error) {
	fields := apierr.FieldErrors{}
	if filter.PricingType != nil && !filter.PricingType.Valid() {
		fields["pricingType"] = "must be one of Global, Zone, ClientZone, PackageExtra"
	}
	if filter.Action != nil && !filter.Action.Valid() {
		fields["action"] = "must be one of Insert, Update, Delete"
	}
	if limit < 0 {
		fields["limit"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apierr.Validation("invalid change log filter", fields)
	}

	switch {
	case limit == 0:
		limit = b.defaultLimit
	case limit > b.maxLimit:
		limit = b.maxLimit
	}

	// One extra row tells whether an older page exists.
	var entries []model.ChangeLogEntry
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		entries, err = tx.ChangeLog.ListChangeLog(ctx, filter, limit+1)
		return err
	})
	if err != nil {
		rlog.Error("failed to list pricing change log", "error", err)
		return nil, apierr.Repository("list pricing change log", err)
	}

	page := &model.ChangeLogPage{Entries: entries}
	if int32(len(entries)) > limit {
		page.Entries = entries[:limit]
		page.NextBeforeID = page.Entries[limit-1].ID
	}
	return page, nil
}
