package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics.app/pricing/store/changelogs"
	"logistics.app/pricing/store/rules"
	"logistics.app/pricing/store/snapshots"
)

// Store combines all table-specific queriers
type Store struct {
	Rules      *rules.Queries
	Snapshots  *snapshots.Queries
	ChangeLogs *changelogs.Queries
}

// NewStore creates a new Store bound to the connection pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Rules:      rules.New(db),
		Snapshots:  snapshots.New(db),
		ChangeLogs: changelogs.New(db),
	}
}

// WithTx returns a Store whose queriers all run inside tx
func (s *Store) WithTx(tx pgx.Tx) *Store {
	return &Store{
		Rules:      s.Rules.WithTx(tx),
		Snapshots:  s.Snapshots.WithTx(tx),
		ChangeLogs: s.ChangeLogs.WithTx(tx),
	}
}
