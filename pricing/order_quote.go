package pricing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"logistics.app/pricing/workflow"
)

type StartOrderQuoteRequest struct {
	// ClientID is required because an accepted quote becomes the order's
	// snapshot.
	ClientID        string `json:"clientId" validate:"required"`
	GovernorateID   string `json:"governorateId"`
	CityID          string `json:"cityId"`
	PackageType     string `json:"packageType" validate:"omitempty,package_type"`
	CurrencyContext string `json:"currencyContext"`
	// AutoAccept records the first quote without waiting for AcceptOrderQuote.
	AutoAccept bool `json:"autoAccept"`
}

type OrderQuoteResponse struct {
	WorkflowID string `json:"workflowId"`
	RunID      string `json:"runId,omitempty"`
}

// StartOrderQuote starts the durable pricing workflow for an order. Starting
// it twice is harmless: the running workflow keeps its quote.
//
//encore:api private path=/v1/orders/:orderID/quote method=POST
func (s *Service) StartOrderQuote(ctx context.Context, orderID string, req *StartOrderQuoteRequest) (*OrderQuoteResponse, error) {
	if orderID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	workflowID := workflow.WorkflowID(orderID)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}
	params := workflow.OrderPricingParams{
		OrderID:    orderID,
		Request:    resolveRequestOf(req.ClientID, req.GovernorateID, req.CityID, req.PackageType, req.CurrencyContext),
		QuoteTTL:   s.quoteTTL,
		AutoAccept: req.AutoAccept,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.OrderPricing, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "order_id", orderID, "workflow_id", workflowID)
			return &OrderQuoteResponse{WorkflowID: workflowID}, nil
		}
		rlog.Error("failed to start order pricing workflow", "error", err, "order_id", orderID, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: fmt.Sprintf("start workflow %s failed", workflowID)}
	}

	return &OrderQuoteResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func (r *StartOrderQuoteRequest) Validate() error {
	return validateRequest(r)
}

// GetOrderQuote returns the live quote held by the order's workflow.
//
//encore:api private path=/v1/orders/:orderID/quote method=GET
func (s *Service) GetOrderQuote(ctx context.Context, orderID string) (*workflow.Quote, error) {
	if orderID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	workflowID := workflow.WorkflowID(orderID)
	encoded, err := s.temporal.QueryWorkflow(ctx, workflowID, "", workflow.QuoteQueryName)
	if err != nil {
		rlog.Error("failed to query order quote", "error", err, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.NotFound, Message: fmt.Sprintf("no quote for order %q", orderID)}
	}

	var quote workflow.Quote
	if err := encoded.Get(&quote); err != nil {
		rlog.Error("failed to decode order quote", "error", err, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode quote"}
	}
	return &quote, nil
}

type AcceptOrderQuoteRequest struct {
	AcceptedBy string `header:"X-Actor-ID" validate:"required"`
}

//encore:api private path=/v1/orders/:orderID/quote/accept method=POST
func (s *Service) AcceptOrderQuote(ctx context.Context, orderID string, req *AcceptOrderQuoteRequest) error {
	workflowID := workflow.WorkflowID(orderID)
	signal := workflow.AcceptQuoteSignal{AcceptedBy: req.AcceptedBy}
	if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.AcceptQuoteSignalName, signal); err != nil {
		rlog.Error("failed to signal quote acceptance", "error", err, "workflow_id", workflowID)
		return &errs.Error{Code: errs.FailedPrecondition, Message: fmt.Sprintf("quote for order %q is not open", orderID)}
	}
	return nil
}

func (r *AcceptOrderQuoteRequest) Validate() error {
	return validateRequest(r)
}

type RepriceOrderQuoteRequest struct {
	ClientID      string `json:"clientId"`
	GovernorateID string `json:"governorateId"`
	CityID        string `json:"cityId"`
	PackageType   string `json:"packageType" validate:"omitempty,package_type"`
}

//encore:api private path=/v1/orders/:orderID/quote/reprice method=POST
func (s *Service) RepriceOrderQuote(ctx context.Context, orderID string, req *RepriceOrderQuoteRequest) error {
	workflowID := workflow.WorkflowID(orderID)
	signal := workflow.RepriceSignal{
		ClientID:      req.ClientID,
		GovernorateID: optional(req.GovernorateID),
		CityID:        optional(req.CityID),
		PackageType:   optional(req.PackageType),
	}
	if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.RepriceSignalName, signal); err != nil {
		rlog.Error("failed to signal reprice", "error", err, "workflow_id", workflowID)
		return &errs.Error{Code: errs.FailedPrecondition, Message: fmt.Sprintf("quote for order %q is not open", orderID)}
	}
	return nil
}

func (r *RepriceOrderQuoteRequest) Validate() error {
	return validateRequest(r)
}

type CancelOrderQuoteRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

// CancelOrderQuote returns before the workflow has seen the signal; a quote
// that already closed ignores it.
//
//encore:api private path=/v1/orders/:orderID/quote/cancel method=POST
func (s *Service) CancelOrderQuote(ctx context.Context, orderID string, req *CancelOrderQuoteRequest) error {
	workflowID := workflow.WorkflowID(orderID)
	signal := workflow.CancelQuoteSignal{Reason: req.Reason}
	runAsync("signal-cancel-quote", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.CancelQuoteSignalName, signal)
	})
	return nil
}

func (r *CancelOrderQuoteRequest) Validate() error {
	return validateRequest(r)
}
