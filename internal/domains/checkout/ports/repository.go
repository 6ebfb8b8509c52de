package ports

import (
	"context"
	"errors"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. Save assigns the monotonic order identifier
// on first write and returns the stored aggregate.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
