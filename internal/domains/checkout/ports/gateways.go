package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartLine is the checkout-side view of one customer cart position.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// CustomerGateway is the anti-corruption boundary towards the customers
// context. Checkout only needs the cart contents and the ability to empty
// the cart once an order is placed.
type CustomerGateway interface {
	Cart(ctx context.Context, customerID int64) ([]CartLine, error)
	ClearCart(ctx context.Context, customerID int64) error
}

// ProductView is the checkout-side projection of a catalog product.
type ProductView struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
}

// CatalogGateway is the anti-corruption boundary towards the catalog
// context. Stock moves through it in both directions: deduction at
// checkout, restoration on cancellation.
type CatalogGateway interface {
	Products(ctx context.Context, ids []int64) ([]*ProductView, error)
	DeductStock(ctx context.Context, productID int64, quantity int) error
	RestoreStock(ctx context.Context, productID int64, quantity int) error
}

// FulfillmentNotifier pushes placed orders to the downstream fulfillment
// system. Delivery is at-least-once; the receiver deduplicates by order ID.
type FulfillmentNotifier interface {
	NotifyOrderPlaced(ctx context.Context, orderID int64, customerID int64, total decimal.Decimal) error
}
