package workflow

const (
	AcceptQuoteSignalName = "accept-quote"
	RepriceSignalName     = "reprice-order"
	CancelQuoteSignalName = "cancel-quote"

	QuoteQueryName = "quote"
)

// AcceptQuoteSignal freezes the current quote into the order's snapshot.
type AcceptQuoteSignal struct {
	AcceptedBy string `json:"accepted_by"`
}

// RepriceSignal replaces the order attributes while the quote is still open,
// e.g. after the order form changed the package type.
type RepriceSignal struct {
	ClientID      string  `json:"client_id"`
	GovernorateID *string `json:"governorate_id,omitempty"`
	CityID        *string `json:"city_id,omitempty"`
	PackageType   *string `json:"package_type,omitempty"`
}

type CancelQuoteSignal struct {
	Reason string `json:"reason"`
}
