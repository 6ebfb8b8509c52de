package ports

import (
	"context"
	"errors"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
)

var ErrNotFound = errors.New("customer not found")

// Repository persists customers together with their single cart. Save
// assigns the monotonic customer ID when the aggregate carries none.
type Repository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
