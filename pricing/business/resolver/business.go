package resolver

import (
	"context"

	"logistics.app/pricing/domain"
	"logistics.app/pricing/model"
)

type Business interface {
	// Resolve walks the precedence chain and returns the attributed fee.
	// It never writes and only fails on storage errors or an unknown
	// package type.
	Resolve(ctx context.Context, req model.ResolveRequest) (*model.PriceBreakdown, error)
}

type business struct {
	transactor domain.Transactor
}

func NewResolverBusiness(transactor domain.Transactor) Business {
	return &business{transactor: transactor}
}
