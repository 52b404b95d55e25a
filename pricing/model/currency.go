package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// USDStep is the smallest USD increment a fee may carry.
	USDStep = decimal.RequireFromString("0.5")
	// LBPStep is the smallest LBP increment a fee may carry.
	LBPStep = decimal.NewFromInt(1000)
)

// Fees are stored as NUMERIC(12,2) for USD and NUMERIC(14,0) for LBP.
const (
	usdScale     = 2
	usdIntDigits = 10
	lbpScale     = 0
	lbpIntDigits = 14
)

// CurrencyAmount pairs a USD and an LBP value. The two are tracked independently
// and never converted into one another.
type CurrencyAmount struct {
	USD decimal.Decimal `json:"usd"`
	LBP decimal.Decimal `json:"lbp"`
}

// Amount builds a CurrencyAmount from plain values.
func Amount(usd float64, lbp int64) CurrencyAmount {
	return CurrencyAmount{
		USD: decimal.NewFromFloat(usd),
		LBP: decimal.NewFromInt(lbp),
	}
}

// ZeroAmount is the {0,0} amount used when no rule contributes a fee.
func ZeroAmount() CurrencyAmount {
	return CurrencyAmount{USD: decimal.Zero, LBP: decimal.Zero}
}

// Add sums two amounts per currency.
func (a CurrencyAmount) Add(b CurrencyAmount) CurrencyAmount {
	return CurrencyAmount{
		USD: a.USD.Add(b.USD),
		LBP: a.LBP.Add(b.LBP),
	}
}

func (a CurrencyAmount) Equal(b CurrencyAmount) bool {
	return a.USD.Equal(b.USD) && a.LBP.Equal(b.LBP)
}

func (a CurrencyAmount) IsZero() bool {
	return a.USD.IsZero() && a.LBP.IsZero()
}

// Violations reports every broken amount invariant keyed by field name.
// An empty map means the amount is valid.
func (a CurrencyAmount) Violations() map[string]string {
	violations := map[string]string{}
	if msg := CheckUSD(a.USD); msg != "" {
		violations["usd"] = msg
	}
	if msg := CheckLBP(a.LBP); msg != "" {
		violations["lbp"] = msg
	}
	return violations
}

// CheckUSD returns why d is not a storable USD fee, or "" when it is.
func CheckUSD(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return ""
	case d.IsNegative():
		return "must not be negative"
	case !withinScale(d, usdScale):
		return "must have at most 2 decimal places"
	case !withinIntDigits(d, usdIntDigits):
		return "must be less than 10000000000"
	case !d.Mod(USDStep).IsZero():
		return "must be a multiple of 0.5"
	}
	return ""
}

// CheckLBP returns why d is not a storable LBP fee, or "" when it is.
func CheckLBP(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return ""
	case d.IsNegative():
		return "must not be negative"
	case !withinScale(d, lbpScale):
		return "must be a whole number"
	case !withinIntDigits(d, lbpIntDigits):
		return "must be less than 100000000000000"
	case !d.Mod(LBPStep).IsZero():
		return "must be a multiple of 1000"
	}
	return ""
}

// withinScale reports whether d has at most scale significant fractional
// digits. Only the coefficient is inspected, never rescaled, so a huge
// negative exponent is rejected without allocating.
func withinScale(d decimal.Decimal, scale int32) bool {
	exp := d.Exponent()
	if exp >= -scale || d.IsZero() {
		return true
	}
	excess := int64(-scale) - int64(exp)
	if excess > int64(d.NumDigits()) {
		return false
	}
	// The extra fractional digits must all be trailing zeros.
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(excess), nil)
	return new(big.Int).Rem(d.Coefficient(), divisor).Sign() == 0
}

// withinIntDigits reports whether the integer part of d fits in digits.
func withinIntDigits(d decimal.Decimal, digits int32) bool {
	if d.IsZero() {
		return true
	}
	return int64(d.NumDigits())+int64(d.Exponent()) <= int64(digits)
}

func (a CurrencyAmount) Valid() bool {
	return len(a.Violations()) == 0
}

func (a CurrencyAmount) String() string {
	return "USD " + a.USD.StringFixed(2) + " / LBP " + a.LBP.StringFixed(0)
}
