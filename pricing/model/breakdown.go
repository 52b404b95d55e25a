package model

// BaseSource names the rule tier that produced the base fee.
type BaseSource string

const (
	BaseSourceGlobalDefault      BaseSource = "GlobalDefault"
	BaseSourceZonePricing        BaseSource = "ZonePricing"
	BaseSourceClientZoneOverride BaseSource = "ClientZoneOverride"
)

// ExtraSource names the rule tier that produced the package extra.
type ExtraSource string

const (
	ExtraSourceNone   ExtraSource = "NoExtra"
	ExtraSourceGlobal ExtraSource = "GlobalExtra"
	ExtraSourceClient ExtraSource = "ClientExtra"
)

// ResolveRequest carries the order attributes that drive fee resolution.
// Every field is optional; CityID is recorded but never consulted.
type ResolveRequest struct {
	ClientID        *string      `json:"clientId,omitempty"`
	GovernorateID   *string      `json:"governorateId,omitempty"`
	CityID          *string      `json:"cityId,omitempty"`
	PackageType     *PackageType `json:"packageType,omitempty"`
	CurrencyContext *string      `json:"currencyContext,omitempty"`
}

// RuleDetails identifies the exact rows behind a breakdown. BaseRuleID is nil
// when the global default applied.
type RuleDetails struct {
	BaseRuleID       *string `json:"baseRuleId,omitempty"`
	BaseRuleVersion  int32   `json:"baseRuleVersion"`
	ExtraRuleID      *string `json:"extraRuleId,omitempty"`
	ExtraRuleVersion int32   `json:"extraRuleVersion,omitempty"`
	CurrencyContext  *string `json:"currencyContext,omitempty"`
}

// PriceBreakdown is the resolver's output. Field names and source values are a
// public contract.
type PriceBreakdown struct {
	Base        CurrencyAmount `json:"base"`
	Extra       CurrencyAmount `json:"extra"`
	Total       CurrencyAmount `json:"total"`
	BaseSource  BaseSource     `json:"baseSource"`
	ExtraSource ExtraSource    `json:"extraSource"`
	RuleDetails RuleDetails    `json:"ruleDetails"`
}
