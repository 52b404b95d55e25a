package pricing

import (
	"context"
	"time"

	"encore.dev/rlog"

	"logistics.app/pricing/model"
)

type ListChangeLogParams struct {
	PricingType string    `query:"pricingType" validate:"omitempty,oneof=Global Zone ClientZone PackageExtra"`
	Action      string    `query:"action" validate:"omitempty,oneof=Insert Update Delete"`
	EntityID    string    `query:"entityId"`
	ChangedBy   string    `query:"changedBy"`
	Since       time.Time `query:"since"`
	// BeforeID is the last id of the previous page.
	BeforeID int64 `query:"beforeId" validate:"min=0"`
	Limit    int32 `query:"limit" validate:"min=0"`
}

type ListChangeLogResponse struct {
	Entries []model.ChangeLogEntry `json:"entries"`
	// NextBeforeID is passed as beforeId to fetch the next older page. Zero
	// means this is the last page.
	NextBeforeID int64 `json:"nextBeforeId,omitempty"`
}

//encore:api public path=/v1/pricing/change-log method=GET
func (s *Service) ListChangeLog(ctx context.Context, params *ListChangeLogParams) (*ListChangeLogResponse, error) {
	filter := params.filter()
	page, err := s.changeLog.List(ctx, filter, params.Limit)
	if err != nil {
		rlog.Error("failed to list change log", "error", err)
		return nil, err
	}

	return &ListChangeLogResponse{
		Entries:      page.Entries,
		NextBeforeID: page.NextBeforeID,
	}, nil
}

func (p *ListChangeLogParams) Validate() error {
	return validateRequest(p)
}

func (p *ListChangeLogParams) filter() model.ChangeLogFilter {
	var filter model.ChangeLogFilter
	if p.PricingType != "" {
		pricingType := model.PricingType(p.PricingType)
		filter.PricingType = &pricingType
	}
	if p.Action != "" {
		action := model.ChangeAction(p.Action)
		filter.Action = &action
	}
	filter.EntityID = optional(p.EntityID)
	filter.ChangedBy = optional(p.ChangedBy)
	if !p.Since.IsZero() {
		since := p.Since
		filter.Since = &since
	}
	if p.BeforeID > 0 {
		beforeID := p.BeforeID
		filter.BeforeID = &beforeID
	}
	return filter
}
