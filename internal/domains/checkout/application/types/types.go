// Package types holds serializable projections exchanged with durable
// workflow infrastructure. The order aggregate keeps its line snapshot
// private; these shapes make it survive a trip through a data converter.
package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
)

// OrderLine mirrors one snapshotted order position.
type OrderLine struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// OrderProjection is the wire-safe shape of a placed order.
type OrderProjection struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	Lines      []OrderLine     `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	PlacedAt   time.Time       `json:"placedAt"`
}

// ProjectOrder flattens the aggregate into its serializable projection.
func ProjectOrder(order *domain.Order) *OrderProjection {
	if order == nil {
		return nil
	}
	lines := order.Lines()
	projected := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		projected = append(projected, OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	return &OrderProjection{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Lines:      projected,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Shipping:   order.Shipping,
		Total:      order.Total,
		Status:     string(order.Status),
		PlacedAt:   order.PlacedAt,
	}
}

// ToDomain rebuilds the aggregate from the projection.
func (p *OrderProjection) ToDomain() (*domain.Order, error) {
	lines := make([]domain.Line, 0, len(p.Lines))
	for _, line := range p.Lines {
		lines = append(lines, domain.Line{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	return domain.Restore(p.ID, domain.Spec{
		CustomerID: p.CustomerID,
		Lines:      lines,
		Subtotal:   p.Subtotal,
		Tax:        p.Tax,
		Shipping:   p.Shipping,
		Total:      p.Total,
		PlacedAt:   p.PlacedAt,
	}, domain.Status(p.Status))
}
