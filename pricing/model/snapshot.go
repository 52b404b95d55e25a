package model

import (
	"time"
)

// OrderPriceSnapshot is the immutable fee recorded for an order the first time
// its price was accepted.
type OrderPriceSnapshot struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"orderId"`
	ClientID      string         `json:"clientId"`
	GovernorateID *string        `json:"governorateId,omitempty"`
	CityID        *string        `json:"cityId,omitempty"`
	PackageType   *PackageType   `json:"packageType,omitempty"`
	Base          CurrencyAmount `json:"base"`
	Extra         CurrencyAmount `json:"extra"`
	Total         CurrencyAmount `json:"total"`
	BaseSource    BaseSource     `json:"baseSource"`
	ExtraSource   ExtraSource    `json:"extraSource"`
	RuleDetails   RuleDetails    `json:"ruleDetails"`
	CalculatedAt  time.Time      `json:"calculatedAt"`
}

// SnapshotInput is what the order workflow hands over once a fee is accepted.
type SnapshotInput struct {
	ClientID      string         `json:"clientId"`
	GovernorateID *string        `json:"governorateId,omitempty"`
	CityID        *string        `json:"cityId,omitempty"`
	PackageType   *PackageType   `json:"packageType,omitempty"`
	Breakdown     PriceBreakdown `json:"breakdown"`
}
