package pricing

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/model"
)

type GlobalDefaultsResponse struct {
	Defaults model.GlobalDefaults `json:"defaults"`
}

//encore:api public path=/v1/pricing/defaults method=GET
func (s *Service) GetGlobalDefaults(ctx context.Context) (*GlobalDefaultsResponse, error) {
	defaults, err := s.admin.GetGlobalDefaults(ctx)
	if err != nil {
		rlog.Error("failed to get global defaults", "error", err)
		return nil, err
	}
	return &GlobalDefaultsResponse{Defaults: *defaults}, nil
}

type SetGlobalDefaultsRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy      string `header:"X-Actor-ID" json:"-" validate:"required"`

	DefaultFee      Amount `json:"defaultFee"`
	ExpectedVersion int32  `json:"expectedVersion" validate:"min=0"`
}

//encore:api public path=/v1/pricing/defaults method=PUT tag:idempotency
func (s *Service) SetGlobalDefaults(ctx context.Context, req *SetGlobalDefaultsRequest) (*GlobalDefaultsResponse, error) {
	defaults, err := s.admin.SetGlobalDefaults(ctx, admin.GlobalDefaultsInput{
		Fee:             req.DefaultFee.toModel(),
		ExpectedVersion: expectedVersion(req.ExpectedVersion),
		ChangedBy:       req.ChangedBy,
	})
	if err != nil {
		rlog.Error("failed to set global defaults", "error", err, "changed_by", req.ChangedBy)
		return nil, err
	}
	return &GlobalDefaultsResponse{Defaults: *defaults}, nil
}

func (r *SetGlobalDefaultsRequest) Validate() error {
	return validateRequest(r)
}
