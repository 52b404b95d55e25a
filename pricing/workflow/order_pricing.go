package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"logistics.app/pricing/model"
)

// DefaultQuoteTTL is how long an unaccepted quote stays open.
const DefaultQuoteTTL = 30 * time.Minute

type QuoteStatus string

const (
	QuoteStatusOpen      QuoteStatus = "open"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusCancelled QuoteStatus = "cancelled"
	QuoteStatusExpired   QuoteStatus = "expired"
)

type OrderPricingParams struct {
	OrderID  string               `json:"order_id"`
	Request  model.ResolveRequest `json:"request"`
	QuoteTTL time.Duration        `json:"quote_ttl"`
	// AutoAccept records the first quote without waiting for a signal.
	AutoAccept bool `json:"auto_accept"`
}

// Quote is both the query answer and the workflow result.
type Quote struct {
	OrderID   string                    `json:"order_id"`
	Status    QuoteStatus               `json:"status"`
	Breakdown *model.PriceBreakdown     `json:"breakdown,omitempty"`
	Snapshot  *model.OrderPriceSnapshot `json:"snapshot,omitempty"`
	Reason    string                    `json:"reason,omitempty"`
}

// WorkflowID is the one workflow per order; duplicate starts are rejected by
// Temporal.
func WorkflowID(orderID string) string {
	return "order-price-" + orderID
}

// OrderPricing quotes a delivery fee, keeps it current while the order form
// changes, and records it once the order is accepted.
func OrderPricing(ctx workflow.Context, params OrderPricingParams) (*Quote, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting order pricing workflow", "orderID", params.OrderID)

	quote := &Quote{OrderID: params.OrderID, Status: QuoteStatusOpen}
	if err := workflow.SetQueryHandler(ctx, QuoteQueryName, func() (*Quote, error) {
		return quote, nil
	}); err != nil {
		return nil, err
	}

	req := params.Request
	breakdown, err := resolveFee(ctx, req)
	if err != nil {
		logger.Error("Failed to quote order", "orderID", params.OrderID, "error", err)
		return nil, err
	}
	quote.Breakdown = breakdown

	if params.AutoAccept {
		if err := accept(ctx, quote, req); err != nil {
			return nil, err
		}
		return quote, nil
	}

	ttl := params.QuoteTTL
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, ttl)

	acceptCh := workflow.GetSignalChannel(ctx, AcceptQuoteSignalName)
	repriceCh := workflow.GetSignalChannel(ctx, RepriceSignalName)
	cancelCh := workflow.GetSignalChannel(ctx, CancelQuoteSignalName)

	var acceptErr error
	for quote.Status == QuoteStatusOpen && acceptErr == nil {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(repriceCh, func(c workflow.ReceiveChannel, more bool) {
			var signal RepriceSignal
			c.Receive(ctx, &signal)

			next := repricedRequest(req, signal)
			updated, err := resolveFee(ctx, next)
			if err != nil {
				logger.Error("Failed to reprice order, keeping previous quote", "orderID", params.OrderID, "error", err)
				return
			}
			req = next
			quote.Breakdown = updated
			logger.Info("Order repriced", "orderID", params.OrderID, "baseSource", updated.BaseSource)
		})

		selector.AddReceive(acceptCh, func(c workflow.ReceiveChannel, more bool) {
			var signal AcceptQuoteSignal
			c.Receive(ctx, &signal)
			logger.Info("Quote accepted", "orderID", params.OrderID, "acceptedBy", signal.AcceptedBy)
			acceptErr = accept(ctx, quote, req)
		})

		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CancelQuoteSignal
			c.Receive(ctx, &signal)
			logger.Info("Quote cancelled", "orderID", params.OrderID, "reason", signal.Reason)
			quote.Status = QuoteStatusCancelled
			quote.Reason = signal.Reason
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			if err := f.Get(ctx, nil); err != nil {
				return
			}
			logger.Info("Quote expired", "orderID", params.OrderID)
			quote.Status = QuoteStatusExpired
		})

		selector.Select(ctx)
	}
	cancelTimer()

	if acceptErr != nil {
		logger.Error("Failed to record accepted quote", "orderID", params.OrderID, "error", acceptErr)
		return nil, acceptErr
	}

	logger.Info("Order pricing workflow completed", "orderID", params.OrderID, "status", quote.Status)
	return quote, nil
}

func accept(ctx workflow.Context, quote *Quote, req model.ResolveRequest) error {
	input := model.SnapshotInput{
		GovernorateID: req.GovernorateID,
		CityID:        req.CityID,
		PackageType:   req.PackageType,
		Breakdown:     *quote.Breakdown,
	}
	if req.ClientID != nil {
		input.ClientID = *req.ClientID
	}

	stored, err := recordOrderPrice(ctx, quote.OrderID, input)
	if err != nil {
		return err
	}
	quote.Status = QuoteStatusAccepted
	quote.Snapshot = stored
	// The stored snapshot wins over a quote that changed after a replay.
	quote.Breakdown = &model.PriceBreakdown{
		Base:        stored.Base,
		Extra:       stored.Extra,
		Total:       stored.Total,
		BaseSource:  stored.BaseSource,
		ExtraSource: stored.ExtraSource,
		RuleDetails: stored.RuleDetails,
	}
	return nil
}

func repricedRequest(current model.ResolveRequest, signal RepriceSignal) model.ResolveRequest {
	next := model.ResolveRequest{
		GovernorateID:   signal.GovernorateID,
		CityID:          signal.CityID,
		CurrencyContext: current.CurrencyContext,
		ClientID:        current.ClientID,
	}
	if signal.ClientID != "" {
		clientID := signal.ClientID
		next.ClientID = &clientID
	}
	if signal.PackageType != nil {
		packageType := model.PackageType(*signal.PackageType)
		next.PackageType = &packageType
	}
	return next
}

func resolveFee(ctx workflow.Context, req model.ResolveRequest) (*model.PriceBreakdown, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var breakdown model.PriceBreakdown
	if err := workflow.ExecuteActivity(activityCtx, ResolveFeeActivity, req).Get(ctx, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func recordOrderPrice(ctx workflow.Context, orderID string, input model.SnapshotInput) (*model.OrderPriceSnapshot, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var stored model.OrderPriceSnapshot
	if err := workflow.ExecuteActivity(activityCtx, RecordOrderPriceActivity, orderID, input).Get(ctx, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
