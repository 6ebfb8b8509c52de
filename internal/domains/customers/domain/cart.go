package domain

import "errors"

var (
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrUnknownProduct      = errors.New("product is not referenced by the cart")
)

// CartLine pairs a catalog entry with a requested quantity. Lines never
// store prices: subtotals are always computed against the live catalog
// price, so a price change after the line was added is reflected at
// checkout.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// Cart is an ordered collection of lines with at most one line per product.
// Insertion order is preserved for display; it carries no pricing meaning.
type Cart struct {
	lines []CartLine
}

// NewCart builds an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from persisted lines, merging any duplicates
// so the one-line-per-product invariant holds even for legacy rows.
func RestoreCart(lines []CartLine) (*Cart, error) {
	cart := NewCart()
	for _, line := range lines {
		if err := cart.AddLine(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// AddLine adds quantity units of a product. When a line for that product
// already exists its quantity is increased; the cart never holds two lines
// for the same catalog entry.
func (c *Cart) AddLine(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveLine drops the line for the product. Removing an absent product is
// a no-op, not an error.
func (c *Cart) RemoveLine(productID int64) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Quantity returns the quantity currently carried for the product, zero when absent.
func (c *Cart) Quantity(productID int64) int {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// Clear empties the cart, typically after an order was placed.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// LineCount returns the number of distinct product lines.
func (c *Cart) LineCount() int {
	return len(c.lines)
}

// Lines returns a defensive copy; mutating it never affects the cart.
func (c *Cart) Lines() []CartLine {
	return append([]CartLine{}, c.lines...)
}
