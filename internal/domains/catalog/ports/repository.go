package ports

import (
	"context"
	"errors"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists catalog entries. Save assigns the monotonic product ID
// when the aggregate carries none.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
