package mapper

import (
	"time"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

// OrderLine is one snapshotted order position on the wire.
type OrderLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Order is the HTTP representation of a placed order.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customerId"`
	Items      []OrderLine `json:"items"`
	Subtotal   string      `json:"subtotal"`
	Tax        string      `json:"tax"`
	Shipping   string      `json:"shipping"`
	Total      string      `json:"total"`
	Status     string      `json:"status"`
	PlacedAt   time.Time   `json:"placedAt"`
}

// PlaceOrder captures the inbound checkout payload.
type PlaceOrder struct {
	CustomerID int64 `json:"customerId"`
}

// StatusUpdate captures the inbound status change payload.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Quote is the priced cart preview on the wire.
type Quote struct {
	CustomerID int64       `json:"customerId"`
	Items      []OrderLine `json:"items"`
	Subtotal   string      `json:"subtotal"`
	Tax        string      `json:"tax"`
	Shipping   string      `json:"shipping"`
	Total      string      `json:"total"`
}

// FromDomain maps the order aggregate into its HTTP representation.
func FromDomain(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      fromLines(order.Lines()),
		Subtotal:   order.Subtotal.StringFixed(2),
		Tax:        order.Tax.StringFixed(2),
		Shipping:   order.Shipping.StringFixed(2),
		Total:      order.Total.StringFixed(2),
		Status:     string(order.Status),
		PlacedAt:   order.PlacedAt,
	}
}

// FromDomainList maps a slice of orders.
func FromDomainList(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomain(order))
	}
	return out
}

// FromQuote maps the cart quote projection onto the wire format.
func FromQuote(quote *ports.CartQuote) Quote {
	if quote == nil {
		return Quote{}
	}
	return Quote{
		CustomerID: quote.CustomerID,
		Items:      fromLines(quote.Lines),
		Subtotal:   quote.Breakdown.Subtotal.StringFixed(2),
		Tax:        quote.Breakdown.Tax.StringFixed(2),
		Shipping:   quote.Breakdown.Shipping.StringFixed(2),
		Total:      quote.Breakdown.Total.StringFixed(2),
	}
}

func fromLines(lines []domain.Line) []OrderLine {
	out := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return out
}
