package pricing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/model"
)

type ZonePricingResponse struct {
	Zone model.ZonePricing `json:"zone"`
}

type ListZonePricingResponse struct {
	Zones []model.ZonePricing `json:"zones"`
}

//encore:api public path=/v1/pricing/zones method=GET
func (s *Service) ListZonePricing(ctx context.Context) (*ListZonePricingResponse, error) {
	zones, err := s.admin.ListZonePricing(ctx)
	if err != nil {
		rlog.Error("failed to list zone pricing", "error", err)
		return nil, err
	}
	return &ListZonePricingResponse{Zones: zones}, nil
}

type UpsertZonePricingRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy      string `header:"X-Actor-ID" json:"-" validate:"required"`

	Fee             Amount `json:"fee"`
	ExpectedVersion int32  `json:"expectedVersion" validate:"min=0"`
}

//encore:api public path=/v1/pricing/zones/:governorateID method=PUT tag:idempotency
func (s *Service) UpsertZonePricing(ctx context.Context, governorateID string, req *UpsertZonePricingRequest) (*ZonePricingResponse, error) {
	if governorateID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid governorate ID"}
	}

	zone, err := s.admin.UpsertZonePricing(ctx, admin.ZonePricingInput{
		GovernorateID:   governorateID,
		Fee:             req.Fee.toModel(),
		ExpectedVersion: expectedVersion(req.ExpectedVersion),
		ChangedBy:       req.ChangedBy,
	})
	if err != nil {
		rlog.Error("failed to upsert zone pricing", "error", err, "governorate_id", governorateID)
		return nil, err
	}
	return &ZonePricingResponse{Zone: *zone}, nil
}

func (r *UpsertZonePricingRequest) Validate() error {
	return validateRequest(r)
}

type ZonePricingRow struct {
	GovernorateID   string `json:"governorateId" validate:"required"`
	Fee             Amount `json:"fee"`
	ExpectedVersion int32  `json:"expectedVersion" validate:"min=0"`
}

type BatchUpsertZonePricingRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy      string `header:"X-Actor-ID" json:"-" validate:"required"`

	Rows []ZonePricingRow `json:"rows" validate:"required,min=1,max=100,dive"`
}

// BatchUpsertZonePricing applies every row or none of them.
//
//encore:api public path=/v1/pricing/zone-batches method=POST tag:idempotency
func (s *Service) BatchUpsertZonePricing(ctx context.Context, req *BatchUpsertZonePricingRequest) (*ListZonePricingResponse, error) {
	inputs := make([]admin.ZonePricingInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		inputs = append(inputs, admin.ZonePricingInput{
			GovernorateID:   row.GovernorateID,
			Fee:             row.Fee.toModel(),
			ExpectedVersion: expectedVersion(row.ExpectedVersion),
			ChangedBy:       req.ChangedBy,
		})
	}

	zones, err := s.admin.BatchUpsertZonePricing(ctx, inputs)
	if err != nil {
		rlog.Error("failed to batch upsert zone pricing", "error", err, "rows", len(inputs))
		return nil, err
	}
	return &ListZonePricingResponse{Zones: zones}, nil
}

func (r *BatchUpsertZonePricingRequest) Validate() error {
	return validateRequest(r)
}

// DeleteRuleRequest carries the actor and the version the admin last saw.
type DeleteRuleRequest struct {
	IdempotencyKey  string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy       string `header:"X-Actor-ID" json:"-" validate:"required"`
	ExpectedVersion int32  `query:"expectedVersion" json:"-" validate:"min=0"`
}

func (r *DeleteRuleRequest) Validate() error {
	return validateRequest(r)
}

func (r *DeleteRuleRequest) target() admin.Target {
	return admin.Target{
		ExpectedVersion: expectedVersion(r.ExpectedVersion),
		ChangedBy:       r.ChangedBy,
	}
}

//encore:api public path=/v1/pricing/zones/:governorateID method=DELETE tag:idempotency
func (s *Service) DeleteZonePricing(ctx context.Context, governorateID string, req *DeleteRuleRequest) error {
	if err := s.admin.DeleteZonePricing(ctx, governorateID, req.target()); err != nil {
		rlog.Error("failed to delete zone pricing", "error", err, "governorate_id", governorateID)
		return err
	}
	return nil
}
