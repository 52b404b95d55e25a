package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/store/changelogs"
)

type changeLogRepository struct {
	q changelogs.Querier
}

func (r *changeLogRepository) AppendChangeLog(ctx context.Context, entry model.ChangeLogEntry) (*model.ChangeLogEntry, error) {
	changedFields := entry.ChangedFields
	if changedFields == nil {
		changedFields = []string{}
	}

	row, err := r.q.AppendChangeLog(ctx, changelogs.AppendChangeLogParams{
		PricingType:   string(entry.PricingType),
		Action:        string(entry.Action),
		EntityID:      entry.EntityID,
		OldValues:     entry.OldValues,
		NewValues:     entry.NewValues,
		ChangedFields: changedFields,
		ChangedBy:     entry.ChangedBy,
	})
	if err != nil {
		return nil, apierr.Repository("append pricing change log", err)
	}
	return convertDBChangeLog(row), nil
}

func (r *changeLogRepository) ListChangeLog(ctx context.Context, filter model.ChangeLogFilter, limit int32) ([]model.ChangeLogEntry, error) {
	params := changelogs.ListChangeLogsParams{
		EntityID:  toText(filter.EntityID),
		ChangedBy: toText(filter.ChangedBy),
		Since:     toTimestamptz(filter.Since),
		RowLimit:  limit,
	}
	if filter.PricingType != nil {
		params.PricingType = pgtype.Text{String: string(*filter.PricingType), Valid: true}
	}
	if filter.Action != nil {
		params.Action = pgtype.Text{String: string(*filter.Action), Valid: true}
	}
	if filter.BeforeID != nil {
		params.BeforeID = pgtype.Int8{Int64: *filter.BeforeID, Valid: true}
	}

	rows, err := r.q.ListChangeLogs(ctx, params)
	if err != nil {
		return nil, apierr.Repository("list pricing change log", err)
	}
	entries := make([]model.ChangeLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *convertDBChangeLog(row))
	}
	return entries, nil
}
