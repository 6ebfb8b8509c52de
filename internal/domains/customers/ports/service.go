package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
)

// RegisterCustomerInput carries the attributes for a new customer.
type RegisterCustomerInput struct {
	Name    string
	Email   string
	Address *domain.Address
}

// PricedCartLine joins a cart line with the live catalog price.
type PricedCartLine struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// CartView is the priced projection of a customer cart.
type CartView struct {
	CustomerID int64
	Lines      []PricedCartLine
	Total      decimal.Decimal
}

// Service exposes customer and cart use cases to adapters.
type Service interface {
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, id int64, address *domain.Address) (*domain.Customer, error)
	AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*CartView, error)
	RemoveFromCart(ctx context.Context, customerID, productID int64) (*CartView, error)
	ClearCart(ctx context.Context, customerID int64) error
	GetCart(ctx context.Context, customerID int64) (*CartView, error)
}
