package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct validates and persists a new catalog entry. The repository
// assigns the monotonic product identifier.
func (s *Service) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(0, input.Name, input.UnitPrice, input.Category, input.Stock)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetProduct loads a single catalog entry.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// ListProducts returns the full catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// UpdatePrice replaces the live unit price of a product.
func (s *Service) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.Product, error) {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.SetPrice(price)
	})
}

// UpdateCategory replaces the product category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, category string) (*domain.Product, error) {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		p.SetCategory(category)
		return nil
	})
}

// Restock increases on-hand stock.
func (s *Service) Restock(ctx context.Context, id int64, amount int) (*domain.Product, error) {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.AddStock(amount)
	})
}

// ReduceStock decrements on-hand stock, failing without mutation when the
// requested amount exceeds availability.
func (s *Service) ReduceStock(ctx context.Context, id int64, amount int) (*domain.Product, error) {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.ReduceStock(amount)
	})
}

func (s *Service) mutate(ctx context.Context, id int64, apply func(*domain.Product) error) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := apply(product); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
