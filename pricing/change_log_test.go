package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logistics.app/pricing/mocks/business/changelog_business"
	"logistics.app/pricing/model"
)

func TestListChangeLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChangeLog := changelog_business.NewMockBusiness(ctrl)
	service := &Service{changeLog: mockChangeLog}

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		params         *ListChangeLogParams
		expectedFilter model.ChangeLogFilter
		page           *model.ChangeLogPage
		expectNext     int64
	}{
		{
			name:       "default_page_passes_cursor_through",
			params:     &ListChangeLogParams{},
			page:       &model.ChangeLogPage{Entries: []model.ChangeLogEntry{{ID: 9}, {ID: 8}}, NextBeforeID: 8},
			expectNext: 8,
		},
		{
			name:   "filtered_page_passes_cursor_through",
			params: &ListChangeLogParams{PricingType: "Zone", Action: "Update", Limit: 2},
			expectedFilter: model.ChangeLogFilter{
				PricingType: func() *model.PricingType { p := model.PricingTypeZone; return &p }(),
				Action:      func() *model.ChangeAction { a := model.ChangeActionUpdate; return &a }(),
			},
			page:       &model.ChangeLogPage{Entries: []model.ChangeLogEntry{{ID: 7}, {ID: 5}}, NextBeforeID: 5},
			expectNext: 5,
		},
		{
			name:   "all_filters",
			params: &ListChangeLogParams{EntityID: "zone-1", ChangedBy: "admin-1", Since: since, BeforeID: 40, Limit: 10},
			expectedFilter: model.ChangeLogFilter{
				EntityID:  optional("zone-1"),
				ChangedBy: optional("admin-1"),
				Since:     &since,
				BeforeID:  func() *int64 { id := int64(40); return &id }(),
			},
			page: &model.ChangeLogPage{Entries: []model.ChangeLogEntry{{ID: 39}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.params.Validate())

			mockChangeLog.EXPECT().
				List(gomock.Any(), tc.expectedFilter, tc.params.Limit).
				Return(tc.page, nil).
				Times(1)

			response, err := service.ListChangeLog(context.Background(), tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.page.Entries, response.Entries)
			assert.Equal(t, tc.expectNext, response.NextBeforeID)
		})
	}
}

func TestListChangeLogParamsValidate(t *testing.T) {
	assert.Error(t, (&ListChangeLogParams{PricingType: "City"}).Validate())
	assert.Error(t, (&ListChangeLogParams{Action: "Upsert"}).Validate())
	assert.Error(t, (&ListChangeLogParams{Limit: -1}).Validate())
	assert.NoError(t, (&ListChangeLogParams{PricingType: "ClientZone", Action: "Delete"}).Validate())
}
