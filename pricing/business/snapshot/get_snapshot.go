package snapshot

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func (b *business) GetSnapshot(ctx context.Context, orderID string) (*model.OrderPriceSnapshot, error) {
	var snapshot *model.OrderPriceSnapshot
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		snapshot, err = tx.Snapshots.GetSnapshot(ctx, orderID)
		return err
	})
	if err != nil {
		rlog.Error("failed to get order price snapshot", "error", err, "order_id", orderID)
		return nil, apierr.Repository("get order price snapshot", err)
	}
	if snapshot == nil {
		return nil, apierr.NotFound("order price snapshot", orderID)
	}
	return snapshot, nil
}
