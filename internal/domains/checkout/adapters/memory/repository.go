package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. The nextID counter
// is the single writer for order identifiers, guarded by the mutex so
// concurrent checkouts cannot mint duplicates.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := order.ID
	if id == 0 {
		r.nextID++
		id = r.nextID
	} else if id > r.nextID {
		r.nextID = id
	}
	clone, err := cloneOrder(id, order)
	if err != nil {
		return nil, err
	}
	r.orders[id] = clone
	return cloneOrder(id, clone)
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(id, order)
}

func (r *Repository) ListByCustomer(_ context.Context, customerID int64) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Order
	for _, order := range r.orders {
		if order.CustomerID != customerID {
			continue
		}
		clone, err := cloneOrder(order.ID, order)
		if err != nil {
			return nil, err
		}
		list = append(list, clone)
	}
	sortByID(list)
	return list, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone, err := cloneOrder(order.ID, order)
		if err != nil {
			return nil, err
		}
		list = append(list, clone)
	}
	sortByID(list)
	return list, nil
}

func sortByID(list []*domain.Order) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}

func cloneOrder(id int64, order *domain.Order) (*domain.Order, error) {
	return domain.Restore(id, domain.Spec{
		CustomerID: order.CustomerID,
		Lines:      order.Lines(),
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Shipping:   order.Shipping,
		Total:      order.Total,
		PlacedAt:   order.PlacedAt,
	}, order.Status)
}
