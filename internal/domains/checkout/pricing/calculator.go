// Package pricing computes tax, shipping, and grand totals from an order
// subtotal. The calculator is a stateless value object; every method is a
// pure function of its inputs and the configured rates.
package pricing

import "github.com/shopspring/decimal"

// Default rates applied when no configuration overrides them.
var (
	DefaultTaxRate               = decimal.NewFromFloat(0.08)
	DefaultFreeShippingThreshold = decimal.NewFromInt(100)
	DefaultShippingCost          = decimal.NewFromInt(10)
)

// moneyPlaces is the scale all monetary results are rounded to. Rounding
// happens at calculation boundaries, not at display time, so persisted and
// reported amounts always agree to the cent.
const moneyPlaces = 2

// Calculator holds the flat-rate pricing configuration.
type Calculator struct {
	taxRate               decimal.Decimal
	freeShippingThreshold decimal.Decimal
	shippingCost          decimal.Decimal
}

// Breakdown itemizes how a grand total was reached.
type Breakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// NewCalculator builds a calculator with explicit rates.
func NewCalculator(taxRate, freeShippingThreshold, shippingCost decimal.Decimal) Calculator {
	return Calculator{
		taxRate:               taxRate,
		freeShippingThreshold: freeShippingThreshold,
		shippingCost:          shippingCost,
	}
}

// NewDefaultCalculator builds a calculator with the default flat rates.
func NewDefaultCalculator() Calculator {
	return NewCalculator(DefaultTaxRate, DefaultFreeShippingThreshold, DefaultShippingCost)
}

// TaxRate exposes the configured rate for reporting.
func (c Calculator) TaxRate() decimal.Decimal { return c.taxRate }

// Shipping returns zero at or above the free-shipping threshold, otherwise
// the flat shipping cost.
func (c Calculator) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(c.freeShippingThreshold) {
		return decimal.Zero
	}
	return c.shippingCost
}

// Tax computes tax on the subtotal only. Shipping is never taxed.
func (c Calculator) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(c.taxRate).Round(moneyPlaces)
}

// TaxWithRate computes tax using an explicit rate instead of the configured one.
func (c Calculator) TaxWithRate(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Round(moneyPlaces)
}

// Total returns subtotal plus tax plus shipping.
func (c Calculator) Total(subtotal decimal.Decimal) decimal.Decimal {
	return c.Quote(subtotal).Total
}

// TotalWithRate returns subtotal grossed up by an explicit tax rate,
// without shipping.
func (c Calculator) TotalWithRate(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Add(c.TaxWithRate(subtotal, rate)).Round(moneyPlaces)
}

// Quote itemizes subtotal, tax, shipping, and the grand total.
func (c Calculator) Quote(subtotal decimal.Decimal) Breakdown {
	tax := c.Tax(subtotal)
	shipping := c.Shipping(subtotal)
	return Breakdown{
		Subtotal: subtotal.Round(moneyPlaces),
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping).Round(moneyPlaces),
	}
}
