package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
)

// Product is the HTTP representation of a catalog entry. Monetary fields are
// serialized as strings to keep decimal precision on the wire.
type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	InStock   bool   `json:"inStock"`
}

// CreateProduct captures the inbound payload for new catalog entries.
type CreateProduct struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Category  string `json:"category,omitempty"`
	Stock     int    `json:"stock,omitempty"`
}

// PriceUpdate carries a price mutation.
type PriceUpdate struct {
	UnitPrice string `json:"unitPrice"`
}

// CategoryUpdate carries a category mutation.
type CategoryUpdate struct {
	Category string `json:"category"`
}

// StockMovement carries a restock or reduction amount.
type StockMovement struct {
	Amount int `json:"amount"`
}

// ToCreateInput converts the transport payload into the application input.
func ToCreateInput(payload CreateProduct) (ports.CreateProductInput, error) {
	price, err := decimal.NewFromString(payload.UnitPrice)
	if err != nil {
		return ports.CreateProductInput{}, err
	}
	return ports.CreateProductInput{
		Name:      payload.Name,
		UnitPrice: price,
		Category:  payload.Category,
		Stock:     payload.Stock,
	}, nil
}

// FromDomain maps the aggregate into its HTTP representation.
func FromDomain(product *domain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice.StringFixed(2),
		Category:  product.Category,
		Stock:     product.Stock,
		InStock:   product.InStock(),
	}
}

// FromDomainList maps a catalog listing.
func FromDomainList(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomain(product))
	}
	return out
}
