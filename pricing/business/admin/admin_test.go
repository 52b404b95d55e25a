package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/business/changelog"
	"logistics.app/pricing/mocks/business/changelog_business"
	"logistics.app/pricing/mocks/domain/transactor"
	"logistics.app/pricing/mocks/repository/pricing_repo"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
	"logistics.app/pricing/repository/memstore"
)

func ptr[T any](v T) *T { return &v }

func setup() (Business, changelog.Business) {
	store := memstore.New()
	log := changelog.NewChangeLogBusiness(store, 0, 0)
	return NewAdminBusiness(store, log), log
}

func entries(t *testing.T, log changelog.Business) []model.ChangeLogEntry {
	t.Helper()
	page, err := log.List(context.Background(), model.ChangeLogFilter{}, changelog.MaxLimit)
	require.NoError(t, err)
	return page.Entries
}

func fieldErrors(t *testing.T, err error) apierr.FieldErrors {
	t.Helper()
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	fields, ok := e.Details.(apierr.FieldErrors)
	require.True(t, ok)
	return fields
}

func TestSetGlobalDefaults(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	current, err := biz.GetGlobalDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, current.DefaultFee.IsZero())
	assert.Equal(t, int32(1), current.Version)

	_, err = biz.SetGlobalDefaults(ctx, GlobalDefaultsInput{Fee: model.Amount(2.3, 0), ChangedBy: "admin"})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	assert.Contains(t, fieldErrors(t, err), "defaultFee.usd")

	_, err = biz.SetGlobalDefaults(ctx, GlobalDefaultsInput{Fee: model.Amount(2.5, 1500), ChangedBy: "admin"})
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "defaultFee.lbp")

	updated, err := biz.SetGlobalDefaults(ctx, GlobalDefaultsInput{
		Fee:             model.Amount(1.5, 50000),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), updated.Version)
	assert.Equal(t, "admin", updated.UpdatedBy)

	_, err = biz.SetGlobalDefaults(ctx, GlobalDefaultsInput{
		Fee:             model.Amount(3.0, 0),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "other",
	})
	require.Error(t, err)
	assert.Equal(t, errs.Aborted, errs.Code(err))

	logged := entries(t, log)
	require.Len(t, logged, 1)
	assert.Equal(t, model.PricingTypeGlobal, logged[0].PricingType)
	assert.Equal(t, model.ChangeActionUpdate, logged[0].Action)
	assert.Equal(t, []string{"defaultFee"}, logged[0].ChangedFields)
	assert.NotEmpty(t, logged[0].OldValues)
	assert.NotEmpty(t, logged[0].NewValues)
}

func TestUpsertZonePricing(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	_, err := biz.UpsertZonePricing(ctx, ZonePricingInput{
		GovernorateID:   "beirut",
		Fee:             model.Amount(2.0, 60000),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "admin",
	})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))

	created, err := biz.UpsertZonePricing(ctx, ZonePricingInput{GovernorateID: "beirut", Fee: model.Amount(2.0, 60000), ChangedBy: "admin"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), created.Version)

	updated, err := biz.UpsertZonePricing(ctx, ZonePricingInput{
		GovernorateID:   "beirut",
		Fee:             model.Amount(2.5, 60000),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int32(2), updated.Version)

	// A writer holding the old version loses instead of clobbering.
	_, err = biz.UpsertZonePricing(ctx, ZonePricingInput{
		GovernorateID:   "beirut",
		Fee:             model.Amount(9.0, 0),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "late",
	})
	require.Error(t, err)
	assert.Equal(t, errs.Aborted, errs.Code(err))

	zones, err := biz.ListZonePricing(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.True(t, zones[0].Fee.Equal(model.Amount(2.5, 60000)))

	logged := entries(t, log)
	require.Len(t, logged, 2)
	assert.Equal(t, model.ChangeActionUpdate, logged[0].Action)
	assert.Equal(t, model.ChangeActionInsert, logged[1].Action)
	assert.Empty(t, logged[1].OldValues)
	assert.Equal(t, created.ID, logged[0].EntityID)
}

func TestDeleteZonePricing(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	err := biz.DeleteZonePricing(ctx, "beirut", Target{ChangedBy: "admin"})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))

	zone, err := biz.UpsertZonePricing(ctx, ZonePricingInput{GovernorateID: "beirut", Fee: model.Amount(2.0, 60000), ChangedBy: "admin"})
	require.NoError(t, err)

	err = biz.DeleteZonePricing(ctx, "beirut", Target{ExpectedVersion: ptr(int32(4)), ChangedBy: "admin"})
	require.Error(t, err)
	assert.Equal(t, errs.Aborted, errs.Code(err))

	require.NoError(t, biz.DeleteZonePricing(ctx, "beirut", Target{ExpectedVersion: ptr(int32(1)), ChangedBy: "admin"}))

	logged := entries(t, log)
	require.Len(t, logged, 2)
	assert.Equal(t, model.ChangeActionDelete, logged[0].Action)
	assert.Equal(t, zone.ID, logged[0].EntityID)
	assert.NotEmpty(t, logged[0].OldValues)
	assert.Empty(t, logged[0].NewValues)
}

func TestBatchUpsertZonePricing(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	_, err := biz.UpsertZonePricing(ctx, ZonePricingInput{GovernorateID: "beirut", Fee: model.Amount(2.0, 60000), ChangedBy: "admin"})
	require.NoError(t, err)

	zones, err := biz.BatchUpsertZonePricing(ctx, []ZonePricingInput{
		{GovernorateID: "beirut", Fee: model.Amount(3.0, 90000), ChangedBy: "admin"},
		{GovernorateID: "north", Fee: model.Amount(3.0, 90000), ChangedBy: "admin"},
		{GovernorateID: "south", Fee: model.Amount(3.0, 90000), ChangedBy: "admin"},
	})
	require.NoError(t, err)
	require.Len(t, zones, 3)

	logged := entries(t, log)
	require.Len(t, logged, 4)
	assert.Equal(t, model.ChangeActionInsert, logged[0].Action)
	assert.Equal(t, model.ChangeActionInsert, logged[1].Action)
	assert.Equal(t, model.ChangeActionUpdate, logged[2].Action)

	testCases := []struct {
		name          string
		rows          []ZonePricingInput
		expectedField string
	}{
		{
			name:          "empty",
			rows:          nil,
			expectedField: "rows",
		},
		{
			name: "duplicate_governorate",
			rows: []ZonePricingInput{
				{GovernorateID: "east", Fee: model.Amount(1.0, 0), ChangedBy: "admin"},
				{GovernorateID: "east", Fee: model.Amount(1.5, 0), ChangedBy: "admin"},
			},
			expectedField: "rows[1].governorateId",
		},
		{
			name: "one_bad_amount",
			rows: []ZonePricingInput{
				{GovernorateID: "east", Fee: model.Amount(1.0, 0), ChangedBy: "admin"},
				{GovernorateID: "west", Fee: model.Amount(1.0, 2500), ChangedBy: "admin"},
			},
			expectedField: "rows[1].fee.lbp",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := biz.BatchUpsertZonePricing(ctx, tc.rows)
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, fieldErrors(t, err), tc.expectedField)
		})
	}

	zonesAfter, err := biz.ListZonePricing(ctx)
	require.NoError(t, err)
	assert.Len(t, zonesAfter, 3)
	assert.Len(t, entries(t, log), 4)
}

func TestBatchUpsertZonePricing_RollsBackOnLogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := memstore.New()
	realLog := changelog.NewChangeLogBusiness(store, 0, 0)
	mockLog := changelog_business.NewMockBusiness(ctrl)

	gomock.InOrder(
		mockLog.EXPECT().
			Record(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(realLog.Record),
		mockLog.EXPECT().
			Record(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("log unavailable")),
	)

	biz := NewAdminBusiness(store, mockLog)
	ctx := context.Background()

	_, err := biz.BatchUpsertZonePricing(ctx, []ZonePricingInput{
		{GovernorateID: "north", Fee: model.Amount(1.0, 0), ChangedBy: "admin"},
		{GovernorateID: "south", Fee: model.Amount(1.0, 0), ChangedBy: "admin"},
	})
	require.Error(t, err)
	assert.Equal(t, errs.Internal, errs.Code(err))

	zones, err := biz.ListZonePricing(ctx)
	require.NoError(t, err)
	assert.Empty(t, zones)
	assert.Empty(t, entries(t, realLog))
}

func TestUpsertClientOverride(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	first, err := biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ClientID:       "C1",
		GovernorateIDs: []string{"beirut", "mount-lebanon", "beirut"},
		Fee:            model.Amount(1.0, 30000),
		ChangedBy:      "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"beirut", "mount-lebanon"}, first.GovernorateIDs)

	_, err = biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ClientID:       "C1",
		GovernorateIDs: []string{"north", "beirut"},
		Fee:            model.Amount(1.5, 0),
		ChangedBy:      "admin",
	})
	require.Error(t, err)
	assert.Equal(t, errs.AlreadyExists, errs.Code(err))
	assert.Contains(t, err.Error(), "beirut")

	// Another client may cover the same governorate.
	_, err = biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ClientID:       "C2",
		GovernorateIDs: []string{"beirut"},
		Fee:            model.Amount(1.5, 0),
		ChangedBy:      "admin",
	})
	require.NoError(t, err)

	// Reshaping an override may keep its own governorates.
	updated, err := biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ID:              &first.ID,
		ClientID:        "C1",
		GovernorateIDs:  []string{"beirut", "north"},
		Fee:             model.Amount(0.5, 10000),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), updated.Version)

	_, err = biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ID:             &first.ID,
		ClientID:       "C2",
		GovernorateIDs: []string{"south"},
		Fee:            model.Amount(0.5, 0),
		ChangedBy:      "admin",
	})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))

	_, err = biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ID:             ptr("missing"),
		ClientID:       "C1",
		GovernorateIDs: []string{"south"},
		Fee:            model.Amount(0.5, 0),
		ChangedBy:      "admin",
	})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))

	c1 := "C1"
	overrides, err := biz.ListClientOverrides(ctx, &c1)
	require.NoError(t, err)
	require.Len(t, overrides, 1)

	all, err := biz.ListClientOverrides(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	logged := entries(t, log)
	require.Len(t, logged, 3)
	assert.Equal(t, model.PricingTypeClientZone, logged[0].PricingType)
	assert.Equal(t, []string{"fee", "governorateIds"}, logged[0].ChangedFields)
}

func TestDeleteClientOverride(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	override, err := biz.UpsertClientOverride(ctx, ClientOverrideInput{
		ClientID:       "C1",
		GovernorateIDs: []string{"beirut"},
		Fee:            model.Amount(1.0, 30000),
		ChangedBy:      "admin",
	})
	require.NoError(t, err)

	require.NoError(t, biz.DeleteClientOverride(ctx, override.ID, Target{ChangedBy: "admin"}))

	err = biz.DeleteClientOverride(ctx, override.ID, Target{ChangedBy: "admin"})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))

	logged := entries(t, log)
	require.Len(t, logged, 2)
	assert.Equal(t, model.ChangeActionDelete, logged[0].Action)
}

func TestUpsertPackageExtra(t *testing.T) {
	biz, log := setup()
	ctx := context.Background()

	_, err := biz.UpsertPackageExtra(ctx, PackageExtraInput{
		PackageType: model.PackageType("Pallet"),
		Extra:       model.Amount(1.0, 0),
		ChangedBy:   "admin",
	})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))

	global, err := biz.UpsertPackageExtra(ctx, PackageExtraInput{
		PackageType: model.PackageTypeBulky,
		Extra:       model.Amount(1.0, 0),
		ChangedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ExtraScopeGlobal, global.Scope)

	client, err := biz.UpsertPackageExtra(ctx, PackageExtraInput{
		ClientID:    ptr("C1"),
		PackageType: model.PackageTypeBulky,
		Extra:       model.Amount(0.5, 0),
		ChangedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ExtraScopeClient, client.Scope)
	assert.NotEqual(t, global.ID, client.ID)

	updated, err := biz.UpsertPackageExtra(ctx, PackageExtraInput{
		PackageType:     model.PackageTypeBulky,
		Extra:           model.Amount(2.0, 0),
		ExpectedVersion: ptr(int32(1)),
		ChangedBy:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, global.ID, updated.ID)
	assert.Equal(t, int32(2), updated.Version)

	extras, err := biz.ListPackageExtras(ctx, ptr("C1"))
	require.NoError(t, err)
	assert.Len(t, extras, 2)

	require.NoError(t, biz.DeletePackageExtra(ctx, client.ID, Target{ChangedBy: "admin"}))

	err = biz.DeletePackageExtra(ctx, client.ID, Target{ChangedBy: "admin"})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))

	logged := entries(t, log)
	require.Len(t, logged, 4)
	for _, e := range logged {
		assert.Equal(t, model.PricingTypePackageExtra, e.PricingType)
	}
}

func TestMutationsRequireActor(t *testing.T) {
	biz, _ := setup()
	ctx := context.Background()

	_, err := biz.UpsertZonePricing(ctx, ZonePricingInput{GovernorateID: "beirut", Fee: model.ZeroAmount()})
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "changedBy")

	err = biz.DeletePackageExtra(ctx, "x", Target{})
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "changedBy")
}

func TestBatchUpsertZonePricing_LocksInGovernorateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTransactor := transactor.NewMockTransactor(ctrl)
	mockRules := pricing_repo.NewMockRuleWriter(ctrl)
	mockLog := changelog_business.NewMockBusiness(ctrl)

	mockTransactor.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Tx) error) error {
			return fn(repository.Tx{Rules: mockRules})
		})

	var locked []string
	mockRules.EXPECT().LockKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) error {
			locked = append(locked, key)
			return nil
		}).Times(3)
	mockRules.EXPECT().LockZonePricing(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	mockRules.EXPECT().CreateZonePricing(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, governorateID string, fee model.CurrencyAmount) (*model.ZonePricing, error) {
			return &model.ZonePricing{ID: "zone-" + governorateID, GovernorateID: governorateID, Fee: fee, Version: 1}, nil
		}).Times(3)
	mockLog.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(&model.ChangeLogEntry{}, nil).Times(3)

	biz := NewAdminBusiness(mockTransactor, mockLog)
	zones, err := biz.BatchUpsertZonePricing(context.Background(), []ZonePricingInput{
		{GovernorateID: "tripoli", Fee: model.Amount(3, 90000), ChangedBy: "admin"},
		{GovernorateID: "beirut", Fee: model.Amount(2, 60000), ChangedBy: "admin"},
		{GovernorateID: "metn", Fee: model.Amount(2.5, 70000), ChangedBy: "admin"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"zone:beirut", "zone:metn", "zone:tripoli"}, locked)
	require.Len(t, zones, 3)
	assert.Equal(t, "tripoli", zones[0].GovernorateID)
	assert.Equal(t, "beirut", zones[1].GovernorateID)
	assert.Equal(t, "metn", zones[2].GovernorateID)
}
