package repository

import (
	"context"

	"logistics.app/pricing/model"
	"logistics.app/pricing/store"
)

// RuleReader holds the four read paths the resolver walks. When bound to a
// single transaction every call observes the same rule generation. Absent
// rows come back as nil without an error.
type RuleReader interface {
	GetGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error)
	FindZonePricing(ctx context.Context, governorateID string) (*model.ZonePricing, error)
	FindClientZoneOverride(ctx context.Context, clientID, governorateID string) (*model.ClientZoneOverride, error)
	// FindPackageExtra returns the client scoped row when clientID is set and
	// the global row otherwise. It never falls back between scopes.
	FindPackageExtra(ctx context.Context, clientID *string, packageType model.PackageType) (*model.PackageTypeExtra, error)
}

// RuleWriter is the admin side of the rule tables. Lock methods hold their
// lock until the surrounding transaction ends and return nil for absent rows.
type RuleWriter interface {
	RuleReader

	ListZonePricing(ctx context.Context) ([]model.ZonePricing, error)
	ListClientOverrides(ctx context.Context, clientID *string) ([]model.ClientZoneOverride, error)
	ListPackageExtras(ctx context.Context, clientID *string) ([]model.PackageTypeExtra, error)

	LockKey(ctx context.Context, key string) error

	LockGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error)
	UpdateGlobalDefaults(ctx context.Context, fee model.CurrencyAmount, updatedBy string) (*model.GlobalDefaults, error)

	LockZonePricing(ctx context.Context, governorateID string) (*model.ZonePricing, error)
	CreateZonePricing(ctx context.Context, governorateID string, fee model.CurrencyAmount) (*model.ZonePricing, error)
	UpdateZonePricing(ctx context.Context, id string, fee model.CurrencyAmount) (*model.ZonePricing, error)
	DeleteZonePricing(ctx context.Context, id string) error

	LockClientOverride(ctx context.Context, id string) (*model.ClientZoneOverride, error)
	CreateClientOverride(ctx context.Context, clientID string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error)
	UpdateClientOverride(ctx context.Context, id string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error)
	DeleteClientOverride(ctx context.Context, id string) error

	LockPackageExtra(ctx context.Context, id string) (*model.PackageTypeExtra, error)
	CreatePackageExtra(ctx context.Context, clientID *string, packageType model.PackageType, extra model.CurrencyAmount) (*model.PackageTypeExtra, error)
	UpdatePackageExtra(ctx context.Context, id string, extra model.CurrencyAmount) (*model.PackageTypeExtra, error)
	DeletePackageExtra(ctx context.Context, id string) error
}

type SnapshotStore interface {
	GetSnapshot(ctx context.Context, orderID string) (*model.OrderPriceSnapshot, error)
	// InsertSnapshotIfAbsent stores snapshot unless one exists for its order.
	// The stored row is returned either way; created tells which happened.
	InsertSnapshotIfAbsent(ctx context.Context, snapshot model.OrderPriceSnapshot) (stored *model.OrderPriceSnapshot, created bool, err error)
}

type ChangeLogStore interface {
	AppendChangeLog(ctx context.Context, entry model.ChangeLogEntry) (*model.ChangeLogEntry, error)
	ListChangeLog(ctx context.Context, filter model.ChangeLogFilter, limit int32) ([]model.ChangeLogEntry, error)
}

// Tx bundles the repositories that share one transaction.
type Tx struct {
	Rules     RuleWriter
	Snapshots SnapshotStore
	ChangeLog ChangeLogStore
}

// New binds the repositories to s. Pass a transaction scoped Store to get a
// transaction scoped Tx.
func New(s *store.Store) Tx {
	return Tx{
		Rules:     &ruleRepository{q: s.Rules},
		Snapshots: &snapshotRepository{q: s.Snapshots},
		ChangeLog: &changeLogRepository{q: s.ChangeLogs},
	}
}
