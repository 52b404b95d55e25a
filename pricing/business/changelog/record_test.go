package changelog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"logistics.app/pricing/mocks/repository/pricing_repo"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
	"logistics.app/pricing/repository/memstore"
)

func TestRecord(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	before := &model.ZonePricing{
		ID:            "zone-1",
		GovernorateID: "beirut",
		Fee:           model.Amount(2.0, 60000),
		Version:       1,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	after := *before
	after.Fee = model.Amount(2.5, 60000)
	after.Version = 2
	after.UpdatedAt = created.Add(time.Hour)

	testCases := []struct {
		name           string
		change         model.RuleChange
		expectedFields []string
		expectOld      bool
		expectNew      bool
	}{
		{
			name: "insert",
			change: model.RuleChange{
				PricingType: model.PricingTypeZone,
				Action:      model.ChangeActionInsert,
				EntityID:    "zone-1",
				New:         before,
				ChangedBy:   "admin",
			},
			expectedFields: []string{"fee", "governorateId"},
			expectNew:      true,
		},
		{
			name: "update_only_fee",
			change: model.RuleChange{
				PricingType: model.PricingTypeZone,
				Action:      model.ChangeActionUpdate,
				EntityID:    "zone-1",
				Old:         before,
				New:         &after,
				ChangedBy:   "admin",
			},
			expectedFields: []string{"fee"},
			expectOld:      true,
			expectNew:      true,
		},
		{
			name: "delete_typed_nil_new",
			change: model.RuleChange{
				PricingType: model.PricingTypeZone,
				Action:      model.ChangeActionDelete,
				EntityID:    "zone-1",
				Old:         &after,
				New:         (*model.ZonePricing)(nil),
				ChangedBy:   "admin",
			},
			expectedFields: []string{"fee", "governorateId"},
			expectOld:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStore := pricing_repo.NewMockChangeLogStore(ctrl)

			mockStore.EXPECT().
				AppendChangeLog(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry model.ChangeLogEntry) (*model.ChangeLogEntry, error) {
					entry.ID = 7
					return &entry, nil
				}).
				Times(1)

			biz := NewChangeLogBusiness(nil, 0, 0)
			entry, err := biz.Record(context.Background(), mockStore, tc.change)
			require.NoError(t, err)

			assert.Equal(t, int64(7), entry.ID)
			assert.Equal(t, tc.change.Action, entry.Action)
			assert.Equal(t, "zone-1", entry.EntityID)
			assert.Equal(t, tc.expectedFields, entry.ChangedFields)
			assert.Equal(t, tc.expectOld, len(entry.OldValues) > 0)
			assert.Equal(t, tc.expectNew, len(entry.NewValues) > 0)

			if tc.expectNew {
				var decoded model.ZonePricing
				require.NoError(t, json.Unmarshal(entry.NewValues, &decoded))
				assert.Equal(t, "beirut", decoded.GovernorateID)
			}
		})
	}
}

func TestRecord_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := pricing_repo.NewMockChangeLogStore(ctrl)

	biz := NewChangeLogBusiness(nil, 0, 0)
	_, err := biz.Record(context.Background(), mockStore, model.RuleChange{
		PricingType: model.PricingType("City"),
		Action:      model.ChangeActionInsert,
	})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}

func TestRecord_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := pricing_repo.NewMockChangeLogStore(ctrl)
	storeErr := errors.New("append failed")

	mockStore.EXPECT().AppendChangeLog(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	biz := NewChangeLogBusiness(nil, 0, 0)
	_, err := biz.Record(context.Background(), mockStore, model.RuleChange{
		PricingType: model.PricingTypeGlobal,
		Action:      model.ChangeActionUpdate,
		EntityID:    "global",
		ChangedBy:   "admin",
	})
	assert.ErrorIs(t, err, storeErr)
}

func TestList(t *testing.T) {
	store := memstore.New()
	biz := NewChangeLogBusiness(store, 2, 3)
	ctx := context.Background()

	changes := []model.RuleChange{
		{PricingType: model.PricingTypeGlobal, Action: model.ChangeActionUpdate, EntityID: "global", ChangedBy: "alice"},
		{PricingType: model.PricingTypeZone, Action: model.ChangeActionInsert, EntityID: "zone-1", ChangedBy: "bob"},
		{PricingType: model.PricingTypeZone, Action: model.ChangeActionUpdate, EntityID: "zone-1", ChangedBy: "alice"},
		{PricingType: model.PricingTypeZone, Action: model.ChangeActionDelete, EntityID: "zone-1", ChangedBy: "alice"},
		{PricingType: model.PricingTypePackageExtra, Action: model.ChangeActionInsert, EntityID: "extra-1", ChangedBy: "bob"},
	}
	for _, change := range changes {
		require.NoError(t, store.WithinTx(ctx, func(tx repository.Tx) error {
			_, err := biz.Record(ctx, tx.ChangeLog, change)
			return err
		}))
	}

	zone := model.PricingTypeZone
	alice := "alice"
	beforeID := int64(4)

	testCases := []struct {
		name         string
		filter       model.ChangeLogFilter
		limit        int32
		expectedIDs  []int64
		expectedNext int64
	}{
		{name: "default_limit_has_older_page", limit: 0, expectedIDs: []int64{5, 4}, expectedNext: 4},
		{name: "capped_limit_has_older_page", limit: 100, expectedIDs: []int64{5, 4, 3}, expectedNext: 3},
		{name: "explicit_limit_has_older_page", limit: 3, expectedIDs: []int64{5, 4, 3}, expectedNext: 3},
		{name: "by_type_last_page", filter: model.ChangeLogFilter{PricingType: &zone}, limit: 3, expectedIDs: []int64{4, 3, 2}},
		{name: "by_actor_last_page", filter: model.ChangeLogFilter{ChangedBy: &alice}, limit: 3, expectedIDs: []int64{4, 3, 1}},
		{name: "keyset_last_page", filter: model.ChangeLogFilter{BeforeID: &beforeID}, limit: 3, expectedIDs: []int64{3, 2, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := biz.List(ctx, tc.filter, tc.limit)
			require.NoError(t, err)

			ids := make([]int64, 0, len(page.Entries))
			for _, e := range page.Entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			assert.Equal(t, tc.expectedNext, page.NextBeforeID)
		})
	}
}

func TestList_FollowsCursorToTheEnd(t *testing.T) {
	store := memstore.New()
	biz := NewChangeLogBusiness(store, 2, 3)
	ctx := context.Background()

	for range 6 {
		require.NoError(t, store.WithinTx(ctx, func(tx repository.Tx) error {
			_, err := biz.Record(ctx, tx.ChangeLog, model.RuleChange{
				PricingType: model.PricingTypeGlobal,
				Action:      model.ChangeActionUpdate,
				EntityID:    "global",
				ChangedBy:   "alice",
			})
			return err
		}))
	}

	var (
		seen   []int64
		filter model.ChangeLogFilter
		pages  int
	)
	for {
		page, err := biz.List(ctx, filter, 0)
		require.NoError(t, err)
		pages++
		for _, e := range page.Entries {
			seen = append(seen, e.ID)
		}
		if page.NextBeforeID == 0 {
			break
		}
		next := page.NextBeforeID
		filter.BeforeID = &next
	}

	assert.Equal(t, []int64{6, 5, 4, 3, 2, 1}, seen)
	assert.Equal(t, 3, pages)
}

func TestList_InvalidFilter(t *testing.T) {
	biz := NewChangeLogBusiness(memstore.New(), 0, 0)
	action := model.ChangeAction("Upsert")

	_, err := biz.List(context.Background(), model.ChangeLogFilter{Action: &action}, 10)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}
