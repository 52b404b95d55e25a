package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/mocks/business/snapshot_business"
	"logistics.app/pricing/model"
)

func storedSnapshot(orderID string) *model.OrderPriceSnapshot {
	governorateID := "beirut"
	return &model.OrderPriceSnapshot{
		ID:            "snap-1",
		OrderID:       orderID,
		ClientID:      "C1",
		GovernorateID: &governorateID,
		Base:          model.Amount(1, 30000),
		Extra:         model.ZeroAmount(),
		Total:         model.Amount(1, 30000),
		BaseSource:    model.BaseSourceClientZoneOverride,
		ExtraSource:   model.ExtraSourceNone,
		CalculatedAt:  time.Now(),
	}
}

func TestRecordOrderPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := snapshot_business.NewMockBusiness(ctrl)
	service := &Service{snapshots: mockSnapshots}

	request := &RecordOrderPriceRequest{
		ClientID:      "C1",
		GovernorateID: "beirut",
		PackageType:   "Parcel",
		Breakdown: model.PriceBreakdown{
			Base:        model.Amount(1, 30000),
			Extra:       model.ZeroAmount(),
			Total:       model.Amount(1, 30000),
			BaseSource:  model.BaseSourceClientZoneOverride,
			ExtraSource: model.ExtraSourceNone,
		},
	}

	testCases := []struct {
		name           string
		orderID        string
		mockCreated    bool
		mockError      error
		expectedCode   errs.ErrCode
		expectCall     bool
		expectCreated  bool
		expectSnapshot bool
	}{
		{name: "first_record", orderID: "order-1", mockCreated: true, expectCall: true, expectCreated: true, expectSnapshot: true},
		{name: "replay_returns_stored", orderID: "order-1", mockCreated: false, expectCall: true, expectSnapshot: true},
		{name: "business_rejects", orderID: "order-2", mockError: apierr.Validation("total must equal base + extra", nil), expectCall: true, expectedCode: errs.InvalidArgument},
		{name: "empty_order_id", orderID: "", expectedCode: errs.InvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectCall {
				var stored *model.OrderPriceSnapshot
				if tc.mockError == nil {
					stored = storedSnapshot(tc.orderID)
				}
				mockSnapshots.EXPECT().
					RecordIfAbsent(gomock.Any(), tc.orderID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, input model.SnapshotInput) (*model.OrderPriceSnapshot, bool, error) {
						assert.Equal(t, "C1", input.ClientID)
						require.NotNil(t, input.PackageType)
						assert.Equal(t, model.PackageTypeParcel, *input.PackageType)
						assert.Nil(t, input.CityID)
						return stored, tc.mockCreated, tc.mockError
					}).
					Times(1)
			}

			response, err := service.RecordOrderPrice(context.Background(), tc.orderID, request)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectCreated, response.Created)
			assert.Equal(t, tc.orderID, response.Snapshot.OrderID)
		})
	}
}

func TestGetOrderPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := snapshot_business.NewMockBusiness(ctrl)
	service := &Service{snapshots: mockSnapshots}

	t.Run("found", func(t *testing.T) {
		mockSnapshots.EXPECT().GetSnapshot(gomock.Any(), "order-1").Return(storedSnapshot("order-1"), nil).Times(1)

		response, err := service.GetOrderPrice(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Equal(t, "snap-1", response.Snapshot.ID)
		assert.False(t, response.Created)
	})

	t.Run("not_found", func(t *testing.T) {
		mockSnapshots.EXPECT().GetSnapshot(gomock.Any(), "order-2").Return(nil, apierr.NotFound("order price", "order-2")).Times(1)

		response, err := service.GetOrderPrice(context.Background(), "order-2")
		require.Error(t, err)
		assert.Equal(t, errs.NotFound, errs.Code(err))
		assert.Nil(t, response)
	})

	t.Run("storage_failure", func(t *testing.T) {
		mockSnapshots.EXPECT().GetSnapshot(gomock.Any(), "order-3").Return(nil, errors.New("connection refused")).Times(1)

		_, err := service.GetOrderPrice(context.Background(), "order-3")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestRecordOrderPriceRequestValidate(t *testing.T) {
	assert.Error(t, (&RecordOrderPriceRequest{}).Validate(), "client is required")
	assert.Error(t, (&RecordOrderPriceRequest{ClientID: "C1", PackageType: "Crate"}).Validate())
	assert.NoError(t, (&RecordOrderPriceRequest{ClientID: "C1", PackageType: "Document"}).Validate())
}
