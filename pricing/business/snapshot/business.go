package snapshot

import (
	"context"
	"time"

	"logistics.app/pricing/domain"
	"logistics.app/pricing/model"
)

type Business interface {
	// RecordIfAbsent stores the accepted price for an order once. Later calls
	// return the stored snapshot untouched with created=false.
	RecordIfAbsent(ctx context.Context, orderID string, input model.SnapshotInput) (snapshot *model.OrderPriceSnapshot, created bool, err error)
	GetSnapshot(ctx context.Context, orderID string) (*model.OrderPriceSnapshot, error)
}

type business struct {
	transactor domain.Transactor
	now        func() time.Time
}

func NewSnapshotBusiness(transactor domain.Transactor) Business {
	return &business{
		transactor: transactor,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
