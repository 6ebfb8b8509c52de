package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuote_BelowThresholdPaysShipping(t *testing.T) {
	calc := NewDefaultCalculator()

	quote := calc.Quote(money("50.00"))

	assert.Equal(t, "50.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "4.00", quote.Tax.StringFixed(2))
	assert.Equal(t, "10.00", quote.Shipping.StringFixed(2))
	assert.Equal(t, "64.00", quote.Total.StringFixed(2))
}

func TestQuote_AboveThresholdShipsFree(t *testing.T) {
	calc := NewDefaultCalculator()

	quote := calc.Quote(money("150.00"))

	assert.Equal(t, "12.00", quote.Tax.StringFixed(2))
	assert.True(t, quote.Shipping.IsZero())
	assert.Equal(t, "162.00", quote.Total.StringFixed(2))
}

func TestShipping_FreeExactlyAtThreshold(t *testing.T) {
	calc := NewDefaultCalculator()

	assert.True(t, calc.Shipping(money("100.00")).IsZero())
	assert.Equal(t, "10.00", calc.Shipping(money("99.99")).StringFixed(2))
}

func TestTax_AppliesToSubtotalOnly(t *testing.T) {
	calc := NewDefaultCalculator()

	// 99.99 pays shipping, but tax stays 8% of the subtotal alone.
	quote := calc.Quote(money("99.99"))

	assert.Equal(t, "8.00", quote.Tax.StringFixed(2))
	assert.Equal(t, "117.99", quote.Total.StringFixed(2))
}

func TestTax_RoundsHalfUpToCents(t *testing.T) {
	calc := NewDefaultCalculator()

	// 10.31 * 0.08 = 0.8248 -> 0.82; 10.44 * 0.08 = 0.8352 -> 0.84
	assert.Equal(t, "0.82", calc.Tax(money("10.31")).StringFixed(2))
	assert.Equal(t, "0.84", calc.Tax(money("10.44")).StringFixed(2))
}

func TestTaxWithRate_OverridesConfiguredRate(t *testing.T) {
	calc := NewDefaultCalculator()

	assert.Equal(t, "5.00", calc.TaxWithRate(money("50.00"), money("0.10")).StringFixed(2))
	assert.Equal(t, "55.00", calc.TotalWithRate(money("50.00"), money("0.10")).StringFixed(2))
}

func TestQuote_ZeroSubtotal(t *testing.T) {
	calc := NewDefaultCalculator()

	quote := calc.Quote(decimal.Zero)

	assert.True(t, quote.Tax.IsZero())
	assert.Equal(t, "10.00", quote.Shipping.StringFixed(2))
	assert.Equal(t, "10.00", quote.Total.StringFixed(2))
}

func TestNewCalculator_CustomRates(t *testing.T) {
	calc := NewCalculator(money("0.05"), money("200"), money("7.50"))

	quote := calc.Quote(money("150.00"))

	assert.Equal(t, "7.50", quote.Tax.StringFixed(2))
	assert.Equal(t, "7.50", quote.Shipping.StringFixed(2))
	assert.Equal(t, "165.00", quote.Total.StringFixed(2))
}
