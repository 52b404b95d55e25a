// Package memstore keeps pricing rules in process memory. It backs local
// tooling and the scenario tests; production traffic goes through postgres.
//
// Committed state is never mutated: writers work on a copy and swap it in on
// success, so a reader holding an older state sees one consistent generation.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

type state struct {
	global    model.GlobalDefaults
	zones     map[string]model.ZonePricing
	overrides map[string]model.ClientZoneOverride
	extras    map[string]model.PackageTypeExtra
	snapshots map[string]model.OrderPriceSnapshot
	changeLog []model.ChangeLogEntry
	nextLogID int64
}

func (s *state) clone() *state {
	c := &state{
		global:    s.global,
		zones:     make(map[string]model.ZonePricing, len(s.zones)),
		overrides: make(map[string]model.ClientZoneOverride, len(s.overrides)),
		extras:    make(map[string]model.PackageTypeExtra, len(s.extras)),
		snapshots: make(map[string]model.OrderPriceSnapshot, len(s.snapshots)),
		changeLog: slices.Clone(s.changeLog),
		nextLogID: s.nextLogID,
	}
	for k, v := range s.zones {
		c.zones[k] = v
	}
	for k, v := range s.overrides {
		v.GovernorateIDs = slices.Clone(v.GovernorateIDs)
		c.overrides[k] = v
	}
	for k, v := range s.extras {
		c.extras[k] = v
	}
	for k, v := range s.snapshots {
		c.snapshots[k] = v
	}
	return c
}

type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *state

	now func() time.Time
}

// New returns a store seeded with a zero global default, matching the
// migration seed.
func New() *Store {
	s := &Store{now: func() time.Time { return time.Now().UTC() }}
	s.current = &state{
		global: model.GlobalDefaults{
			DefaultFee: model.ZeroAmount(),
			Version:    1,
			UpdatedAt:  s.now(),
			UpdatedBy:  "system",
		},
		zones:     map[string]model.ZonePricing{},
		overrides: map[string]model.ClientZoneOverride{},
		extras:    map[string]model.PackageTypeExtra{},
		snapshots: map[string]model.OrderPriceSnapshot{},
		nextLogID: 1,
	}
	return s
}

// WithClock replaces the wall clock used for row timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) load() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ReadSnapshot hands fn the state committed when it was called. Writes made
// through the view are discarded.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := &view{st: s.load().clone(), now: s.now}
	return fn(v.tx())
}

// WithinTx serializes writers, which stands in for row and advisory locks.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	v := &view{st: s.load().clone(), now: s.now}
	if err := fn(v.tx()); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = v.st
	s.mu.Unlock()
	return nil
}

// view implements every repository over one private state copy.
type view struct {
	st  *state
	now func() time.Time
}

func (v *view) tx() repository.Tx {
	return repository.Tx{Rules: v, Snapshots: v, ChangeLog: v}
}

func (v *view) GetGlobalDefaults(context.Context) (*model.GlobalDefaults, error) {
	g := v.st.global
	return &g, nil
}

func (v *view) FindZonePricing(_ context.Context, governorateID string) (*model.ZonePricing, error) {
	for _, z := range v.st.zones {
		if z.GovernorateID == governorateID {
			return &z, nil
		}
	}
	return nil, nil
}

// FindClientZoneOverride picks the oldest match, the same tie-break the SQL
// query uses.
func (v *view) FindClientZoneOverride(_ context.Context, clientID, governorateID string) (*model.ClientZoneOverride, error) {
	var found *model.ClientZoneOverride
	for _, o := range v.st.overrides {
		if o.ClientID != clientID || !o.Covers(governorateID) {
			continue
		}
		if found == nil || o.CreatedAt.Compare(found.CreatedAt) < 0 ||
			(o.CreatedAt.Equal(found.CreatedAt) && o.ID < found.ID) {
			found = &o
		}
	}
	return found, nil
}

func (v *view) FindPackageExtra(_ context.Context, clientID *string, packageType model.PackageType) (*model.PackageTypeExtra, error) {
	for _, e := range v.st.extras {
		if e.PackageType == packageType && sameClient(e.ClientID, clientID) {
			return &e, nil
		}
	}
	return nil, nil
}

func sameClient(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (v *view) ListZonePricing(context.Context) ([]model.ZonePricing, error) {
	zones := make([]model.ZonePricing, 0, len(v.st.zones))
	for _, z := range v.st.zones {
		zones = append(zones, z)
	}
	slices.SortFunc(zones, func(a, b model.ZonePricing) int { return cmp.Compare(a.GovernorateID, b.GovernorateID) })
	return zones, nil
}

func (v *view) ListClientOverrides(_ context.Context, clientID *string) ([]model.ClientZoneOverride, error) {
	overrides := make([]model.ClientZoneOverride, 0, len(v.st.overrides))
	for _, o := range v.st.overrides {
		if clientID == nil || o.ClientID == *clientID {
			overrides = append(overrides, o)
		}
	}
	slices.SortFunc(overrides, func(a, b model.ClientZoneOverride) int {
		return cmp.Or(cmp.Compare(a.ClientID, b.ClientID), a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return overrides, nil
}

func (v *view) ListPackageExtras(_ context.Context, clientID *string) ([]model.PackageTypeExtra, error) {
	extras := make([]model.PackageTypeExtra, 0, len(v.st.extras))
	for _, e := range v.st.extras {
		if clientID == nil || e.ClientID == nil || sameClient(e.ClientID, clientID) {
			extras = append(extras, e)
		}
	}
	slices.SortFunc(extras, func(a, b model.PackageTypeExtra) int {
		return cmp.Or(cmp.Compare(clientKey(a.ClientID), clientKey(b.ClientID)), cmp.Compare(a.PackageType, b.PackageType))
	})
	return extras, nil
}

func clientKey(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

func (v *view) LockKey(context.Context, string) error {
	return nil
}

func (v *view) LockGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error) {
	return v.GetGlobalDefaults(ctx)
}

func (v *view) UpdateGlobalDefaults(_ context.Context, fee model.CurrencyAmount, updatedBy string) (*model.GlobalDefaults, error) {
	v.st.global.DefaultFee = fee
	v.st.global.UpdatedBy = updatedBy
	v.st.global.UpdatedAt = v.now()
	v.st.global.Version++
	g := v.st.global
	return &g, nil
}

func (v *view) LockZonePricing(ctx context.Context, governorateID string) (*model.ZonePricing, error) {
	return v.FindZonePricing(ctx, governorateID)
}

func (v *view) CreateZonePricing(ctx context.Context, governorateID string, fee model.CurrencyAmount) (*model.ZonePricing, error) {
	if existing, _ := v.FindZonePricing(ctx, governorateID); existing != nil {
		return nil, apierr.Conflict("zone pricing already exists for governorate " + governorateID)
	}
	now := v.now()
	z := model.ZonePricing{
		ID:            uuid.NewString(),
		GovernorateID: governorateID,
		Fee:           fee,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	v.st.zones[z.ID] = z
	return &z, nil
}

func (v *view) UpdateZonePricing(_ context.Context, id string, fee model.CurrencyAmount) (*model.ZonePricing, error) {
	z, ok := v.st.zones[id]
	if !ok {
		return nil, apierr.NotFound("zone pricing", id)
	}
	z.Fee = fee
	z.Version++
	z.UpdatedAt = v.now()
	v.st.zones[id] = z
	return &z, nil
}

func (v *view) DeleteZonePricing(_ context.Context, id string) error {
	if _, ok := v.st.zones[id]; !ok {
		return apierr.NotFound("zone pricing", id)
	}
	delete(v.st.zones, id)
	return nil
}

func (v *view) LockClientOverride(_ context.Context, id string) (*model.ClientZoneOverride, error) {
	o, ok := v.st.overrides[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (v *view) CreateClientOverride(_ context.Context, clientID string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error) {
	now := v.now()
	o := model.ClientZoneOverride{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		GovernorateIDs: slices.Clone(governorateIDs),
		Fee:            fee,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	v.st.overrides[o.ID] = o
	return &o, nil
}

func (v *view) UpdateClientOverride(_ context.Context, id string, governorateIDs []string, fee model.CurrencyAmount) (*model.ClientZoneOverride, error) {
	o, ok := v.st.overrides[id]
	if !ok {
		return nil, apierr.NotFound("client zone override", id)
	}
	o.GovernorateIDs = slices.Clone(governorateIDs)
	o.Fee = fee
	o.Version++
	o.UpdatedAt = v.now()
	v.st.overrides[id] = o
	return &o, nil
}

func (v *view) DeleteClientOverride(_ context.Context, id string) error {
	if _, ok := v.st.overrides[id]; !ok {
		return apierr.NotFound("client zone override", id)
	}
	delete(v.st.overrides, id)
	return nil
}

func (v *view) LockPackageExtra(_ context.Context, id string) (*model.PackageTypeExtra, error) {
	e, ok := v.st.extras[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (v *view) CreatePackageExtra(ctx context.Context, clientID *string, packageType model.PackageType, extra model.CurrencyAmount) (*model.PackageTypeExtra, error) {
	if existing, _ := v.FindPackageExtra(ctx, clientID, packageType); existing != nil {
		return nil, apierr.Conflict("package extra already exists for " + string(packageType))
	}
	now := v.now()
	e := model.PackageTypeExtra{
		ID:          uuid.NewString(),
		Scope:       model.ScopeOf(clientID),
		ClientID:    clientID,
		PackageType: packageType,
		Extra:       extra,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	v.st.extras[e.ID] = e
	return &e, nil
}

func (v *view) UpdatePackageExtra(_ context.Context, id string, extra model.CurrencyAmount) (*model.PackageTypeExtra, error) {
	e, ok := v.st.extras[id]
	if !ok {
		return nil, apierr.NotFound("package extra", id)
	}
	e.Extra = extra
	e.Version++
	e.UpdatedAt = v.now()
	v.st.extras[id] = e
	return &e, nil
}

func (v *view) DeletePackageExtra(_ context.Context, id string) error {
	if _, ok := v.st.extras[id]; !ok {
		return apierr.NotFound("package extra", id)
	}
	delete(v.st.extras, id)
	return nil
}

func (v *view) GetSnapshot(_ context.Context, orderID string) (*model.OrderPriceSnapshot, error) {
	snap, ok := v.st.snapshots[orderID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (v *view) InsertSnapshotIfAbsent(_ context.Context, snapshot model.OrderPriceSnapshot) (*model.OrderPriceSnapshot, bool, error) {
	if existing, ok := v.st.snapshots[snapshot.OrderID]; ok {
		return &existing, false, nil
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	v.st.snapshots[snapshot.OrderID] = snapshot
	return &snapshot, true, nil
}

func (v *view) AppendChangeLog(_ context.Context, entry model.ChangeLogEntry) (*model.ChangeLogEntry, error) {
	entry.ID = v.st.nextLogID
	entry.CreatedAt = v.now()
	if entry.ChangedFields == nil {
		entry.ChangedFields = []string{}
	}
	v.st.nextLogID++
	v.st.changeLog = append(v.st.changeLog, entry)
	return &entry, nil
}

func (v *view) ListChangeLog(_ context.Context, filter model.ChangeLogFilter, limit int32) ([]model.ChangeLogEntry, error) {
	entries := []model.ChangeLogEntry{}
	for i := len(v.st.changeLog) - 1; i >= 0 && len(entries) < int(limit); i-- {
		e := v.st.changeLog[i]
		if matches(e, filter) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func matches(e model.ChangeLogEntry, f model.ChangeLogFilter) bool {
	switch {
	case f.PricingType != nil && e.PricingType != *f.PricingType:
		return false
	case f.Action != nil && e.Action != *f.Action:
		return false
	case f.EntityID != nil && e.EntityID != *f.EntityID:
		return false
	case f.ChangedBy != nil && e.ChangedBy != *f.ChangedBy:
		return false
	case f.Since != nil && e.CreatedAt.Before(*f.Since):
		return false
	case f.BeforeID != nil && e.ID >= *f.BeforeID:
		return false
	}
	return true
}
