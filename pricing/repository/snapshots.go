package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/store/snapshots"
)

type snapshotRepository struct {
	q snapshots.Querier
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, orderID string) (*model.OrderPriceSnapshot, error) {
	row, err := r.q.GetSnapshotByOrderID(ctx, orderID)
	if err != nil {
		return nil, absent("get order price snapshot", err)
	}
	snapshot, err := convertDBSnapshot(row)
	if err != nil {
		return nil, apierr.Repository("decode order price snapshot", err)
	}
	return snapshot, nil
}

func (r *snapshotRepository) InsertSnapshotIfAbsent(ctx context.Context, snapshot model.OrderPriceSnapshot) (*model.OrderPriceSnapshot, bool, error) {
	details, err := json.Marshal(snapshot.RuleDetails)
	if err != nil {
		return nil, false, apierr.Repository("encode rule details", err)
	}

	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}

	var packageType pgtype.Text
	if snapshot.PackageType != nil {
		packageType = pgtype.Text{String: string(*snapshot.PackageType), Valid: true}
	}

	row, err := r.q.InsertSnapshotIfAbsent(ctx, snapshots.InsertSnapshotIfAbsentParams{
		ID:            snapshot.ID,
		OrderID:       snapshot.OrderID,
		ClientID:      snapshot.ClientID,
		GovernorateID: toText(snapshot.GovernorateID),
		CityID:        toText(snapshot.CityID),
		PackageType:   packageType,
		BaseUsd:       toNumeric(snapshot.Base.USD),
		BaseLbp:       toNumeric(snapshot.Base.LBP),
		ExtraUsd:      toNumeric(snapshot.Extra.USD),
		ExtraLbp:      toNumeric(snapshot.Extra.LBP),
		TotalUsd:      toNumeric(snapshot.Total.USD),
		TotalLbp:      toNumeric(snapshot.Total.LBP),
		BaseSource:    string(snapshot.BaseSource),
		ExtraSource:   string(snapshot.ExtraSource),
		RuleDetails:   details,
		CalculatedAt:  toTimestamptz(&snapshot.CalculatedAt),
	})
	if err == nil {
		stored, err := convertDBSnapshot(row)
		if err != nil {
			return nil, false, apierr.Repository("decode order price snapshot", err)
		}
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, apierr.Repository("insert order price snapshot", err)
	}

	// ON CONFLICT DO NOTHING returned no row: another writer got there first.
	existing, err := r.GetSnapshot(ctx, snapshot.OrderID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, apierr.Repository("insert order price snapshot", errors.New("conflicting snapshot vanished"))
	}
	return existing, false, nil
}
