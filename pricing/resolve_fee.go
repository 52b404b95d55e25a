package pricing

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/model"
)

type ResolveFeeRequest struct {
	ClientID        string `json:"clientId"`
	GovernorateID   string `json:"governorateId"`
	CityID          string `json:"cityId"`
	PackageType     string `json:"packageType" validate:"omitempty,package_type"`
	CurrencyContext string `json:"currencyContext"`
}

// ResolveFee prices an order against the current rules without storing
// anything. Order workflows call it while the order form is being filled.
//
//encore:api private path=/v1/pricing/resolve method=POST
func (s *Service) ResolveFee(ctx context.Context, req *ResolveFeeRequest) (*model.PriceBreakdown, error) {
	breakdown, err := s.resolver.Resolve(ctx, req.toModel())
	if err != nil {
		rlog.Error("failed to resolve delivery fee", "error", err, "client_id", req.ClientID, "governorate_id", req.GovernorateID)
		return nil, err
	}
	return breakdown, nil
}

func (r *ResolveFeeRequest) Validate() error {
	return validateRequest(r)
}

func (r *ResolveFeeRequest) toModel() model.ResolveRequest {
	return resolveRequestOf(r.ClientID, r.GovernorateID, r.CityID, r.PackageType, r.CurrencyContext)
}

// resolveRequestOf treats blank attributes as absent.
func resolveRequestOf(clientID, governorateID, cityID, packageType, currencyContext string) model.ResolveRequest {
	req := model.ResolveRequest{
		ClientID:        optional(clientID),
		GovernorateID:   optional(governorateID),
		CityID:          optional(cityID),
		CurrencyContext: optional(currencyContext),
	}
	if pt := optional(packageType); pt != nil {
		p := model.PackageType(*pt)
		req.PackageType = &p
	}
	return req
}
