package changelog

import (
	"context"

	"logistics.app/pricing/domain"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

const (
	DefaultLimit int32 = 50
	MaxLimit     int32 = 500
)

type Business interface {
	// Record appends one entry through store, which must be bound to the
	// transaction that applies the mutation.
	Record(ctx context.Context, store repository.ChangeLogStore, change model.RuleChange) (*model.ChangeLogEntry, error)
	// List returns one page of entries, newest first. A zero limit means the
	// default page; larger limits are capped.
	List(ctx context.Context, filter model.ChangeLogFilter, limit int32) (*model.ChangeLogPage, error)
}

type business struct {
	transactor   domain.Transactor
	defaultLimit int32
	maxLimit     int32
}

// NewChangeLogBusiness falls back to DefaultLimit and MaxLimit for
// non-positive page sizes.
func NewChangeLogBusiness(transactor domain.Transactor, defaultLimit, maxLimit int32) Business {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &business{
		transactor:   transactor,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}
