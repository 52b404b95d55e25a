package pricing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"logistics.app/pricing/model"
)

type RecordOrderPriceRequest struct {
	ClientID      string               `json:"clientId" validate:"required"`
	GovernorateID string               `json:"governorateId"`
	CityID        string               `json:"cityId"`
	PackageType   string               `json:"packageType" validate:"omitempty,package_type"`
	Breakdown     model.PriceBreakdown `json:"breakdown"`
}

type OrderPriceResponse struct {
	Snapshot model.OrderPriceSnapshot `json:"snapshot"`
	// Created is false when an earlier call already priced the order.
	Created bool `json:"created"`
}

// RecordOrderPrice freezes the accepted breakdown for an order. The first
// call wins and every later call returns the stored snapshot.
//
//encore:api private path=/v1/orders/:orderID/price method=POST
func (s *Service) RecordOrderPrice(ctx context.Context, orderID string, req *RecordOrderPriceRequest) (*OrderPriceResponse, error) {
	if orderID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	input := model.SnapshotInput{
		ClientID:      req.ClientID,
		GovernorateID: optional(req.GovernorateID),
		CityID:        optional(req.CityID),
		Breakdown:     req.Breakdown,
	}
	if pt := optional(req.PackageType); pt != nil {
		packageType := model.PackageType(*pt)
		input.PackageType = &packageType
	}

	stored, created, err := s.snapshots.RecordIfAbsent(ctx, orderID, input)
	if err != nil {
		rlog.Error("failed to record order price", "error", err, "order_id", orderID)
		return nil, err
	}

	return &OrderPriceResponse{
		Snapshot: *stored,
		Created:  created,
	}, nil
}

func (r *RecordOrderPriceRequest) Validate() error {
	return validateRequest(r)
}

//encore:api private path=/v1/orders/:orderID/price method=GET
func (s *Service) GetOrderPrice(ctx context.Context, orderID string) (*OrderPriceResponse, error) {
	if orderID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	stored, err := s.snapshots.GetSnapshot(ctx, orderID)
	if err != nil {
		rlog.Error("failed to get order price", "error", err, "order_id", orderID)
		return nil, err
	}

	return &OrderPriceResponse{
		Snapshot: *stored,
	}, nil
}
