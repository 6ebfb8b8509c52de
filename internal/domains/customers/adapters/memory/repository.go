package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory customer persistence adapter. The nextID
// counter is mutex-guarded so concurrent registration cannot mint
// duplicate customer identifiers.
type Repository struct {
	mu        sync.RWMutex
	customers map[int64]*domain.Customer
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{customers: map[int64]*domain.Customer{}}
}

func (r *Repository) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	clone, err := cloneCustomer(customer)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.customers[clone.ID] = clone
	out, err := cloneCustomer(clone)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneCustomer(customer)
}

func (r *Repository) List(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		clone, err := cloneCustomer(customer)
		if err != nil {
			return nil, err
		}
		list = append(list, clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// cloneCustomer deep-copies the aggregate including its cart so callers can
// never mutate stored state through a returned pointer.
func cloneCustomer(customer *domain.Customer) (*domain.Customer, error) {
	cart, err := domain.RestoreCart(customer.Cart.Lines())
	if err != nil {
		return nil, err
	}
	clone := &domain.Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Cart:  cart,
	}
	clone.SetAddress(customer.Address)
	return clone, nil
}
