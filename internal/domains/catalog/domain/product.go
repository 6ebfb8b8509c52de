package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is applied when a product is created without one.
const DefaultCategory = "General"

var (
	ErrEmptyName         = errors.New("product name is required")
	ErrNegativePrice     = errors.New("unit price must not be negative")
	ErrSubCentPrice      = errors.New("unit price must not carry sub-cent precision")
	ErrNegativeStock     = errors.New("stock quantity must not be negative")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is the catalog aggregate: a sellable item with a live unit price
// and an on-hand stock count. Identity is the repository-assigned ID; all
// other attributes are mutable through validated mutators.
type Product struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Category  string
	Stock     int
}

// NewProduct validates the invariants and builds a new Product aggregate.
// An empty category falls back to DefaultCategory.
func NewProduct(id int64, name string, unitPrice decimal.Decimal, category string, stock int) (*Product, error) {
	p := &Product{ID: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(unitPrice); err != nil {
		return nil, err
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	p.SetCategory(category)
	return p, nil
}

// Rename mutates the product name ensuring it stays non-empty.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice replaces the unit price. Negative and sub-cent prices are
// rejected with no mutation; money in the catalog is always whole cents, so
// an order line sum never disagrees with its rounded subtotal.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.Equal(price.Round(2)) {
		return ErrSubCentPrice
	}
	p.UnitPrice = price
	return nil
}

// SetCategory replaces the category, defaulting when blank.
func (p *Product) SetCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	p.Category = category
}

// SetStock overrides the on-hand quantity.
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return ErrNegativeStock
	}
	p.Stock = quantity
	return nil
}

// AddStock increases the on-hand quantity.
func (p *Product) AddStock(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	p.Stock += amount
	return nil
}

// ReduceStock decrements the on-hand quantity. When the requested amount
// exceeds the current stock the aggregate is left untouched and
// ErrInsufficientStock is returned.
func (p *Product) ReduceStock(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= amount
	return nil
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Equals compares products by identity only. Two products with the same ID
// are the same catalog entry regardless of attribute drift.
func (p *Product) Equals(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if !p.UnitPrice.Equal(p.UnitPrice.Round(2)) {
		return ErrSubCentPrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
