package pricing

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/model"
)

type ListRulesParams struct {
	// ClientID narrows the list to one client; empty lists every row.
	ClientID string `query:"clientId"`
}

type ClientOverrideResponse struct {
	Override model.ClientZoneOverride `json:"override"`
}

type ListClientOverridesResponse struct {
	Overrides []model.ClientZoneOverride `json:"overrides"`
}

//encore:api public path=/v1/pricing/client-overrides method=GET
func (s *Service) ListClientOverrides(ctx context.Context, params *ListRulesParams) (*ListClientOverridesResponse, error) {
	overrides, err := s.admin.ListClientOverrides(ctx, optional(params.ClientID))
	if err != nil {
		rlog.Error("failed to list client overrides", "error", err, "client_id", params.ClientID)
		return nil, err
	}
	return &ListClientOverridesResponse{Overrides: overrides}, nil
}

type UpsertClientOverrideRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy      string `header:"X-Actor-ID" json:"-" validate:"required"`

	// ID updates an existing override; empty creates one.
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId" validate:"required"`
	GovernorateIDs  []string `json:"governorateIds" validate:"required,min=1,dive,required"`
	Fee             Amount   `json:"fee"`
	ExpectedVersion int32    `json:"expectedVersion" validate:"min=0"`
}

//encore:api public path=/v1/pricing/client-overrides method=POST tag:idempotency
func (s *Service) UpsertClientOverride(ctx context.Context, req *UpsertClientOverrideRequest) (*ClientOverrideResponse, error) {
	override, err := s.admin.UpsertClientOverride(ctx, admin.ClientOverrideInput{
		ID:              optional(req.ID),
		ClientID:        req.ClientID,
		GovernorateIDs:  req.GovernorateIDs,
		Fee:             req.Fee.toModel(),
		ExpectedVersion: expectedVersion(req.ExpectedVersion),
		ChangedBy:       req.ChangedBy,
	})
	if err != nil {
		rlog.Error("failed to upsert client override", "error", err, "client_id", req.ClientID)
		return nil, err
	}
	return &ClientOverrideResponse{Override: *override}, nil
}

func (r *UpsertClientOverrideRequest) Validate() error {
	return validateRequest(r)
}

//encore:api public path=/v1/pricing/client-overrides/:id method=DELETE tag:idempotency
func (s *Service) DeleteClientOverride(ctx context.Context, id string, req *DeleteRuleRequest) error {
	if err := s.admin.DeleteClientOverride(ctx, id, req.target()); err != nil {
		rlog.Error("failed to delete client override", "error", err, "id", id)
		return err
	}
	return nil
}
