package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
)

// CreateProductInput carries the attributes for a new catalog entry.
type CreateProductInput struct {
	Name      string
	UnitPrice decimal.Decimal
	Category  string
	Stock     int
}

// Service exposes catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.Product, error)
	UpdateCategory(ctx context.Context, id int64, category string) (*domain.Product, error)
	Restock(ctx context.Context, id int64, amount int) (*domain.Product, error)
	ReduceStock(ctx context.Context, id int64, amount int) (*domain.Product, error)
}
