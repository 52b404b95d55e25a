package domain

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"logistics.app/pricing/repository"
	"logistics.app/pricing/store"
)

// Transactor owns the transaction boundary for pricing reads and writes.
type Transactor interface {
	// ReadSnapshot runs fn against one consistent view of the rule tables.
	// Writes committed while fn runs are invisible to it.
	ReadSnapshot(ctx context.Context, fn func(repository.Tx) error) error
	// WithinTx runs fn in a read-write transaction and commits when fn
	// returns nil. Any error rolls everything back.
	WithinTx(ctx context.Context, fn func(repository.Tx) error) error
}

type PgTransactor struct {
	db    *pgxpool.Pool
	store *store.Store
}

func NewPgTransactor(db *pgxpool.Pool, s *store.Store) *PgTransactor {
	return &PgTransactor{db: db, store: s}
}

func (t *PgTransactor) ReadSnapshot(ctx context.Context, fn func(repository.Tx) error) error {
	return t.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (t *PgTransactor) WithinTx(ctx context.Context, fn func(repository.Tx) error) error {
	return t.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (t *PgTransactor) run(ctx context.Context, opts pgx.TxOptions, fn func(repository.Tx) error) error {
	tx, err := t.db.BeginTx(ctx, opts)
	if err != nil {
		rlog.Error("failed to start pricing transaction", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(repository.New(t.store.WithTx(tx))); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		rlog.Error("failed to commit pricing transaction", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}
