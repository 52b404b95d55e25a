package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/mocks/business/admin_business"
	"logistics.app/pricing/model"
)

func TestGetGlobalDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	mockAdmin.EXPECT().GetGlobalDefaults(gomock.Any()).Return(&model.GlobalDefaults{
		DefaultFee: model.ZeroAmount(),
		Version:    1,
		UpdatedBy:  "system",
	}, nil).Times(1)

	response, err := service.GetGlobalDefaults(context.Background())
	require.NoError(t, err)
	assert.True(t, response.Defaults.DefaultFee.IsZero())
	assert.Equal(t, int32(1), response.Defaults.Version)
}

func TestSetGlobalDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := admin_business.NewMockBusiness(ctrl)
	service := &Service{admin: mockAdmin}

	testCases := []struct {
		name            string
		request         *SetGlobalDefaultsRequest
		expectedVersion *int32
		mockError       error
		expectedCode    errs.ErrCode
	}{
		{
			name:    "unconditional_update",
			request: &SetGlobalDefaultsRequest{ChangedBy: "admin-1", DefaultFee: amount("1.5", "50000")},
		},
		{
			name:            "versioned_update",
			request:         &SetGlobalDefaultsRequest{ChangedBy: "admin-1", DefaultFee: amount("1.5", "50000"), ExpectedVersion: 4},
			expectedVersion: expectedVersion(4),
		},
		{
			name:            "stale_version",
			request:         &SetGlobalDefaultsRequest{ChangedBy: "admin-1", DefaultFee: amount("2", "60000"), ExpectedVersion: 3},
			expectedVersion: expectedVersion(3),
			mockError:       apierr.StaleVersion("global defaults", 3, 4),
			expectedCode:    errs.Aborted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockAdmin.EXPECT().
				SetGlobalDefaults(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, input admin.GlobalDefaultsInput) (*model.GlobalDefaults, error) {
					assert.Equal(t, "admin-1", input.ChangedBy)
					assert.Equal(t, tc.expectedVersion, input.ExpectedVersion)
					assert.True(t, input.Fee.Equal(tc.request.DefaultFee.toModel()))
					if tc.mockError != nil {
						return nil, tc.mockError
					}
					return &model.GlobalDefaults{DefaultFee: input.Fee, Version: 5, UpdatedAt: time.Now(), UpdatedBy: input.ChangedBy}, nil
				}).
				Times(1)

			response, err := service.SetGlobalDefaults(context.Background(), tc.request)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(5), response.Defaults.Version)
			assert.Equal(t, "admin-1", response.Defaults.UpdatedBy)
		})
	}
}
