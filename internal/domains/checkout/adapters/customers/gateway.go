package customers

import (
	"context"
	"errors"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	customersports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

var _ ports.CustomerGateway = (*Gateway)(nil)

// Gateway adapts the customers service to the narrow view checkout depends
// on: the raw cart contents and clearing the cart after a placed order.
type Gateway struct {
	customers customersports.Service
}

func NewGateway(customers customersports.Service) *Gateway {
	return &Gateway{customers: customers}
}

func (g *Gateway) Cart(ctx context.Context, customerID int64) ([]ports.CartLine, error) {
	if err := g.ensure(); err != nil {
		return nil, err
	}
	view, err := g.customers.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lines := make([]ports.CartLine, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, ports.CartLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return lines, nil
}

func (g *Gateway) ClearCart(ctx context.Context, customerID int64) error {
	if err := g.ensure(); err != nil {
		return err
	}
	return g.customers.ClearCart(ctx, customerID)
}

func (g *Gateway) ensure() error {
	if g == nil || g.customers == nil {
		return errors.New("customer gateway not configured")
	}
	return nil
}
