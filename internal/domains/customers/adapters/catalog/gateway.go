package catalog

import (
	"context"
	"errors"

	catalogdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

var _ ports.CatalogGateway = (*Gateway)(nil)

// Gateway adapts the catalog repository to the narrow view the customers
// context depends on.
type Gateway struct {
	catalog catalogports.Repository
}

func NewGateway(catalog catalogports.Repository) *Gateway {
	return &Gateway{catalog: catalog}
}

func (g *Gateway) Product(ctx context.Context, id int64) (*ports.ProductView, error) {
	if g == nil || g.catalog == nil {
		return nil, errors.New("catalog gateway not configured")
	}
	product, err := g.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toView(product), nil
}

func (g *Gateway) Products(ctx context.Context, ids []int64) ([]*ports.ProductView, error) {
	if g == nil || g.catalog == nil {
		return nil, errors.New("catalog gateway not configured")
	}
	products, err := g.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]*ports.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toView(product))
	}
	return views, nil
}

func toView(product *catalogdomain.Product) *ports.ProductView {
	return &ports.ProductView{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Stock:     product.Stock,
	}
}
