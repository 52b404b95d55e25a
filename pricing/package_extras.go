package pricing

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/model"
)

type PackageExtraResponse struct {
	Extra model.PackageTypeExtra `json:"extra"`
}

type ListPackageExtrasResponse struct {
	Extras []model.PackageTypeExtra `json:"extras"`
}

// ListPackageExtras returns the global extras, plus the client's own rows when
// a client is given.
//
//encore:api public path=/v1/pricing/package-extras method=GET
func (s *Service) ListPackageExtras(ctx context.Context, params *ListRulesParams) (*ListPackageExtrasResponse, error) {
	extras, err := s.admin.ListPackageExtras(ctx, optional(params.ClientID))
	if err != nil {
		rlog.Error("failed to list package extras", "error", err, "client_id", params.ClientID)
		return nil, err
	}
	return &ListPackageExtrasResponse{Extras: extras}, nil
}

type UpsertPackageExtraRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ChangedBy      string `header:"X-Actor-ID" json:"-" validate:"required"`

	// ClientID scopes the extra to one client; empty targets the global row.
	ClientID        string `json:"clientId"`
	PackageType     string `json:"packageType" validate:"required,package_type"`
	Extra           Amount `json:"extra"`
	ExpectedVersion int32  `json:"expectedVersion" validate:"min=0"`
}

//encore:api public path=/v1/pricing/package-extras method=PUT tag:idempotency
func (s *Service) UpsertPackageExtra(ctx context.Context, req *UpsertPackageExtraRequest) (*PackageExtraResponse, error) {
	extra, err := s.admin.UpsertPackageExtra(ctx, admin.PackageExtraInput{
		ClientID:        optional(req.ClientID),
		PackageType:     model.PackageType(req.PackageType),
		Extra:           req.Extra.toModel(),
		ExpectedVersion: expectedVersion(req.ExpectedVersion),
		ChangedBy:       req.ChangedBy,
	})
	if err != nil {
		rlog.Error("failed to upsert package extra", "error", err, "client_id", req.ClientID, "package_type", req.PackageType)
		return nil, err
	}
	return &PackageExtraResponse{Extra: *extra}, nil
}

func (r *UpsertPackageExtraRequest) Validate() error {
	return validateRequest(r)
}

//encore:api public path=/v1/pricing/package-extras/:id method=DELETE tag:idempotency
func (s *Service) DeletePackageExtra(ctx context.Context, id string, req *DeleteRuleRequest) error {
	if err := s.admin.DeletePackageExtra(ctx, id, req.target()); err != nil {
		rlog.Error("failed to delete package extra", "error", err, "id", id)
		return err
	}
	return nil
}
