package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyAmountViolations(t *testing.T) {
	testCases := []struct {
		name           string
		amount         CurrencyAmount
		expectedFields []string
	}{
		{
			name:   "zero_amount_is_valid",
			amount: Amount(0, 0),
		},
		{
			name:   "half_dollar_steps_are_valid",
			amount: Amount(2.5, 75000),
		},
		{
			name:   "whole_dollars_are_valid",
			amount: Amount(3, 1000),
		},
		{
			name:           "usd_not_a_half_multiple",
			amount:         Amount(2.3, 0),
			expectedFields: []string{"usd"},
		},
		{
			name:           "lbp_not_a_thousand_multiple",
			amount:         Amount(2.5, 1500),
			expectedFields: []string{"lbp"},
		},
		{
			name:           "both_invalid",
			amount:         Amount(0.25, 999),
			expectedFields: []string{"usd", "lbp"},
		},
		{
			name:           "negative_usd",
			amount:         Amount(-1, 0),
			expectedFields: []string{"usd"},
		},
		{
			name:           "negative_lbp",
			amount:         Amount(0, -1000),
			expectedFields: []string{"lbp"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			violations := tc.amount.Violations()

			assert.Len(t, violations, len(tc.expectedFields))
			for _, field := range tc.expectedFields {
				assert.Contains(t, violations, field)
			}
			assert.Equal(t, len(tc.expectedFields) == 0, tc.amount.Valid())
		})
	}
}

func TestCurrencyAmountViolations_ColumnBounds(t *testing.T) {
	testCases := []struct {
		name     string
		usd      string
		lbp      string
		expected map[string]string
	}{
		{
			name:     "trailing_zeros_within_scale",
			usd:      "2.500",
			lbp:      "1000.000",
			expected: map[string]string{},
		},
		{
			name:     "zero_with_tiny_exponent",
			usd:      "0e-2000000",
			lbp:      "0e-2000000",
			expected: map[string]string{},
		},
		{
			name:     "largest_storable_values",
			usd:      "9999999999.5",
			lbp:      "99999999999000",
			expected: map[string]string{},
		},
		{
			name:     "usd_three_decimal_places",
			usd:      "2.505",
			lbp:      "0",
			expected: map[string]string{"usd": "must have at most 2 decimal places"},
		},
		{
			name:     "usd_tiny_exponent",
			usd:      "1e-2000000",
			lbp:      "0",
			expected: map[string]string{"usd": "must have at most 2 decimal places"},
		},
		{
			name:     "usd_beyond_column",
			usd:      "10000000000",
			lbp:      "0",
			expected: map[string]string{"usd": "must be less than 10000000000"},
		},
		{
			name:     "usd_huge_exponent",
			usd:      "5e2000000",
			lbp:      "0",
			expected: map[string]string{"usd": "must be less than 10000000000"},
		},
		{
			name:     "lbp_fraction",
			usd:      "0",
			lbp:      "1000.5",
			expected: map[string]string{"lbp": "must be a whole number"},
		},
		{
			name:     "lbp_beyond_column",
			usd:      "0",
			lbp:      "1e14",
			expected: map[string]string{"lbp": "must be less than 100000000000000"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := CurrencyAmount{
				USD: decimal.RequireFromString(tc.usd),
				LBP: decimal.RequireFromString(tc.lbp),
			}
			assert.Equal(t, tc.expected, amount.Violations())
		})
	}
}

func TestCurrencyAmountAdd(t *testing.T) {
	testCases := []struct {
		name     string
		base     CurrencyAmount
		extra    CurrencyAmount
		expected CurrencyAmount
	}{
		{
			name:     "adds_each_currency_independently",
			base:     Amount(1.5, 50000),
			extra:    Amount(1, 0),
			expected: Amount(2.5, 50000),
		},
		{
			name:     "zero_extra_keeps_base",
			base:     Amount(2, 60000),
			extra:    ZeroAmount(),
			expected: Amount(2, 60000),
		},
		{
			name:     "lbp_only_extra",
			base:     Amount(0, 0),
			extra:    Amount(0, 15000),
			expected: Amount(0, 15000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := tc.base.Add(tc.extra)

			assert.True(t, total.Equal(tc.expected), "got %s, want %s", total, tc.expected)
			assert.True(t, total.USD.Equal(tc.base.USD.Add(tc.extra.USD)))
			assert.True(t, total.LBP.Equal(tc.base.LBP.Add(tc.extra.LBP)))
		})
	}
}

func TestCurrencyAmountJSON(t *testing.T) {
	var amount CurrencyAmount
	err := json.Unmarshal([]byte(`{"usd": 1.5, "lbp": "50000"}`), &amount)
	require.NoError(t, err)

	assert.True(t, amount.USD.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, amount.LBP.Equal(decimal.NewFromInt(50000)))
	assert.True(t, amount.Valid())
	assert.False(t, amount.IsZero())
	assert.True(t, ZeroAmount().IsZero())
}
