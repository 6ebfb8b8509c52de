package catalog

import (
	"context"
	"errors"

	catalogdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ ports.CatalogGateway = (*Gateway)(nil)

// Gateway adapts the catalog service to the narrow view checkout depends
// on: product lookups plus stock moving in both directions.
type Gateway struct {
	catalog catalogports.Service
}

func NewGateway(catalog catalogports.Service) *Gateway {
	return &Gateway{catalog: catalog}
}

func (g *Gateway) Products(ctx context.Context, ids []int64) ([]*ports.ProductView, error) {
	if err := g.ensure(); err != nil {
		return nil, err
	}
	views := make([]*ports.ProductView, 0, len(ids))
	for _, id := range ids {
		product, err := g.catalog.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		views = append(views, toView(product))
	}
	return views, nil
}

func (g *Gateway) DeductStock(ctx context.Context, productID int64, quantity int) error {
	if err := g.ensure(); err != nil {
		return err
	}
	_, err := g.catalog.ReduceStock(ctx, productID, quantity)
	return err
}

func (g *Gateway) RestoreStock(ctx context.Context, productID int64, quantity int) error {
	if err := g.ensure(); err != nil {
		return err
	}
	_, err := g.catalog.Restock(ctx, productID, quantity)
	return err
}

func (g *Gateway) ensure() error {
	if g == nil || g.catalog == nil {
		return errors.New("catalog gateway not configured")
	}
	return nil
}

func toView(product *catalogdomain.Product) *ports.ProductView {
	return &ports.ProductView{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Stock:     product.Stock,
	}
}
