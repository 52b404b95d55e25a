package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/mocks/business/admin_business"
	"logistics.app/pricing/model"
)

func TestUpsertZonePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	t.Run("passes_path_and_actor", func(t *testing.T) {
		mockAdmin.EXPECT().
			UpsertZonePricing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input admin.ZonePricingInput) (*model.ZonePricing, error) {
				assert.Equal(t, "beirut", input.GovernorateID)
				assert.Equal(t, "admin-1", input.ChangedBy)
				assert.Nil(t, input.ExpectedVersion)
				return &model.ZonePricing{ID: "zone-1", GovernorateID: input.GovernorateID, Fee: input.Fee, Version: 1}, nil
			}).
			Times(1)

		response, err := service.UpsertZonePricing(context.Background(), "beirut", &UpsertZonePricingRequest{
			ChangedBy: "admin-1",
			Fee:       amount("2", "60000"),
		})
		require.NoError(t, err)
		assert.Equal(t, "zone-1", response.Zone.ID)
		assert.True(t, response.Zone.Fee.Equal(model.Amount(2, 60000)))
	})

	t.Run("empty_governorate", func(t *testing.T) {
		_, err := service.UpsertZonePricing(context.Background(), "", &UpsertZonePricingRequest{ChangedBy: "admin-1"})
		require.Error(t, err)
		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})
}

func TestListZonePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	mockAdmin.EXPECT().ListZonePricing(gomock.Any()).Return([]model.ZonePricing{
		{ID: "zone-1", GovernorateID: "beirut"},
		{ID: "zone-2", GovernorateID: "tripoli"},
	}, nil).Times(1)

	response, err := service.ListZonePricing(context.Background())
	require.NoError(t, err)
	assert.Len(t, response.Zones, 2)
}

func TestBatchUpsertZonePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	request := &BatchUpsertZonePricingRequest{
		ChangedBy: "admin-1",
		Rows: []ZonePricingRow{
			{GovernorateID: "beirut", Fee: amount("2", "60000")},
			{GovernorateID: "tripoli", Fee: amount("3", "90000"), ExpectedVersion: 2},
		},
	}
	require.NoError(t, request.Validate())

	t.Run("applies_all_rows", func(t *testing.T) {
		mockAdmin.EXPECT().
			BatchUpsertZonePricing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inputs []admin.ZonePricingInput) ([]model.ZonePricing, error) {
				require.Len(t, inputs, 2)
				assert.Equal(t, "beirut", inputs[0].GovernorateID)
				assert.Nil(t, inputs[0].ExpectedVersion)
				require.NotNil(t, inputs[1].ExpectedVersion)
				assert.Equal(t, int32(2), *inputs[1].ExpectedVersion)
				for _, in := range inputs {
					assert.Equal(t, "admin-1", in.ChangedBy)
				}
				return []model.ZonePricing{{ID: "zone-1"}, {ID: "zone-2"}}, nil
			}).
			Times(1)

		response, err := service.BatchUpsertZonePricing(context.Background(), request)
		require.NoError(t, err)
		assert.Len(t, response.Zones, 2)
	})

	t.Run("rejected_batch", func(t *testing.T) {
		mockAdmin.EXPECT().
			BatchUpsertZonePricing(gomock.Any(), gomock.Any()).
			Return(nil, apierr.Validation("invalid batch", apierr.FieldErrors{"rows[1].governorateId": "duplicates rows[0]"})).
			Times(1)

		response, err := service.BatchUpsertZonePricing(context.Background(), request)
		require.Error(t, err)
		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
		assert.Nil(t, response)
	})

	t.Run("request_validation", func(t *testing.T) {
		assert.Error(t, (&BatchUpsertZonePricingRequest{ChangedBy: "admin-1"}).Validate(), "rows are required")
		assert.Error(t, (&BatchUpsertZonePricingRequest{
			ChangedBy: "admin-1",
			Rows:      []ZonePricingRow{{GovernorateID: "beirut", Fee: amount("2.3", "0")}},
		}).Validate())
	})
}

func TestDeleteZonePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	mockAdmin.EXPECT().
		DeleteZonePricing(gomock.Any(), "beirut", admin.Target{ExpectedVersion: expectedVersion(2), ChangedBy: "admin-1"}).
		Return(nil).
		Times(1)
	mockAdmin.EXPECT().
		DeleteZonePricing(gomock.Any(), "zahle", gomock.Any()).
		Return(apierr.NotFound("zone pricing", "zahle")).
		Times(1)

	assert.NoError(t, service.DeleteZonePricing(context.Background(), "beirut", &DeleteRuleRequest{ChangedBy: "admin-1", ExpectedVersion: 2}))

	err := service.DeleteZonePricing(context.Background(), "zahle", &DeleteRuleRequest{ChangedBy: "admin-1"})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))
}
