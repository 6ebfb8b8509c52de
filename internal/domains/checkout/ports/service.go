package ports

import (
	"context"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/pricing"
)

// PlaceOrderInput carries everything needed to turn a cart into an order.
// The idempotency key is optional; when present, retries with the same key
// and cart return the original order.
type PlaceOrderInput struct {
	CustomerID     int64
	IdempotencyKey string
}

// CartQuote prices a cart without placing an order.
type CartQuote struct {
	CustomerID int64
	Lines      []domain.Line
	Breakdown  pricing.Breakdown
}

// Service exposes checkout use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error)
	CancelOrder(ctx context.Context, id int64) (*domain.Order, error)
	QuoteCart(ctx context.Context, customerID int64) (*CartQuote, error)
}
