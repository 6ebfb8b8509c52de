package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

// Service orchestrates customer and cart use cases.
type Service struct {
	repo    ports.Repository
	catalog ports.CatalogGateway
}

// NewService wires the customers service with its repository and the
// catalog gateway used for availability checks and live pricing.
func NewService(repo ports.Repository, catalog ports.CatalogGateway) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// RegisterCustomer validates and persists a new customer. The cart is
// created inside the aggregate constructor; the repository assigns the
// monotonic customer identifier.
func (s *Service) RegisterCustomer(ctx context.Context, input ports.RegisterCustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(0, input.Name, input.Email)
	if err != nil {
		return nil, mapError(err)
	}
	customer.SetAddress(input.Address)
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetCustomer loads a single customer with its cart.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}

// UpdateAddress replaces the customer postal address.
func (s *Service) UpdateAddress(ctx context.Context, id int64, address *domain.Address) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	customer.SetAddress(address)
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// AddToCart merges quantity units of a product into the customer cart.
// Availability is checked against the live catalog stock: the cumulative
// line quantity may never exceed what is on hand. Stock is not reserved
// here; it is deducted exactly once, at checkout.
func (s *Service) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*ports.CartView, error) {
	if quantity <= 0 {
		return nil, mapError(domain.ErrNonPositiveQuantity)
	}
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, mapError(err)
	}
	if customer.Cart.Quantity(productID)+quantity > product.Stock {
		return nil, mapError(ErrNotEnoughStock)
	}
	if err := customer.Cart.AddLine(productID, quantity); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return s.priceCart(ctx, saved)
}

// RemoveFromCart drops every line for the product; absent products are a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, customerID, productID int64) (*ports.CartView, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	customer.Cart.RemoveLine(productID)
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return s.priceCart(ctx, saved)
}

// ClearCart empties the customer cart.
func (s *Service) ClearCart(ctx context.Context, customerID int64) error {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return mapError(err)
	}
	customer.Cart.Clear()
	if _, err := s.repo.Save(ctx, customer); err != nil {
		return mapError(err)
	}
	return nil
}

// GetCart returns the priced cart projection. An empty cart totals zero.
func (s *Service) GetCart(ctx context.Context, customerID int64) (*ports.CartView, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	return s.priceCart(ctx, customer)
}

// priceCart joins cart lines with the live catalog prices. Prices are never
// cached on the lines, so a catalog price change is reflected immediately.
func (s *Service) priceCart(ctx context.Context, customer *domain.Customer) (*ports.CartView, error) {
	view := &ports.CartView{CustomerID: customer.ID, Total: decimal.Zero}
	lines := customer.Cart.Lines()
	if len(lines) == 0 {
		return view, nil
	}
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.catalog.Products(ctx, ids)
	if err != nil {
		return nil, mapError(err)
	}
	byID := make(map[int64]*ports.ProductView, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, mapError(domain.ErrUnknownProduct)
		}
		subtotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines = append(view.Lines, ports.PricedCartLine{
			ProductID: line.ProductID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

var _ ports.Service = (*Service)(nil)
