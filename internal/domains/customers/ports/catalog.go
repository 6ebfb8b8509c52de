package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductView is the slice of a catalog entry this context needs: enough to
// price a cart line against the live price and to check availability.
type ProductView struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
}

// CatalogGateway exposes catalog lookups to the customers context without
// leaking the catalog domain model across the boundary.
type CatalogGateway interface {
	Product(ctx context.Context, id int64) (*ProductView, error)
	Products(ctx context.Context, ids []int64) ([]*ProductView, error)
}
