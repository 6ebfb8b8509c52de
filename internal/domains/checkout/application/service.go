package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/pricing"
)

// Service turns customer carts into orders and manages their lifecycle.
type Service struct {
	repo       ports.Repository
	keys       ports.IdempotencyStore
	customers  ports.CustomerGateway
	catalog    ports.CatalogGateway
	calculator pricing.Calculator
	notifier   ports.FulfillmentNotifier
}

// NewService wires the checkout service. The notifier is optional: pass nil
// when fulfillment is notified elsewhere, e.g. by a workflow activity.
func NewService(
	repo ports.Repository,
	keys ports.IdempotencyStore,
	customers ports.CustomerGateway,
	catalog ports.CatalogGateway,
	calculator pricing.Calculator,
	notifier ports.FulfillmentNotifier,
) *Service {
	return &Service{
		repo:       repo,
		keys:       keys,
		customers:  customers,
		catalog:    catalog,
		calculator: calculator,
		notifier:   notifier,
	}
}

// PlaceOrder converts the customer cart into an immutable order. Prices and
// names are snapshotted at this moment; stock is deducted all-or-nothing;
// the cart is emptied once the order is stored. A replay carrying the same
// idempotency key and the same cart returns the original order.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	lines, err := s.customers.Cart(ctx, input.CustomerID)
	if err != nil {
		return nil, mapError(err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	fingerprint := cartFingerprint(input.CustomerID, lines)
	if key != "" {
		record, err := s.keys.Get(ctx, key)
		switch {
		case err == nil:
			if record.Fingerprint != fingerprint {
				return nil, ErrIdempotencyConflict
			}
			return s.repo.GetByID(ctx, record.OrderID)
		case !errors.Is(err, ports.ErrKeyNotFound):
			return nil, err
		}
	}

	orderLines, subtotal, err := s.snapshotLines(ctx, lines)
	if err != nil {
		return nil, err
	}
	if err := s.deductStock(ctx, lines); err != nil {
		return nil, err
	}

	quote := s.calculator.Quote(subtotal)
	order, err := domain.NewOrder(domain.Spec{
		CustomerID: input.CustomerID,
		Lines:      orderLines,
		Subtotal:   quote.Subtotal,
		Tax:        quote.Tax,
		Shipping:   quote.Shipping,
		Total:      quote.Total,
	})
	if err != nil {
		s.restoreStock(ctx, lines)
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		s.restoreStock(ctx, lines)
		return nil, mapError(err)
	}

	if key != "" {
		// The order exists at this point; a failed key write only costs
		// deduplication on a later retry, never the order itself.
		_ = s.keys.Put(ctx, ports.IdempotencyRecord{Key: key, Fingerprint: fingerprint, OrderID: saved.ID})
	}
	// Same reasoning: the placed order wins over a cart that lingers one
	// request longer.
	_ = s.customers.ClearCart(ctx, input.CustomerID)

	if s.notifier != nil {
		_ = s.notifier.NotifyOrderPlaced(ctx, saved.ID, saved.CustomerID, saved.Total)
	}
	return saved, nil
}

// GetOrder loads a single order.
func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// ListOrders returns orders for one customer, or every order when
// customerID is zero.
func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	if customerID > 0 {
		orders, err := s.repo.ListByCustomer(ctx, customerID)
		if err != nil {
			return nil, mapError(err)
		}
		return orders, nil
	}
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along the transition table.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := order.Transition(status); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// CancelOrder cancels a pending order and returns its units to the catalog.
func (s *Service) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := order.Cancel(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	// The cancellation is durable at this point; a retried cancel now fails
	// the status check, so the units can only ever come back once.
	for _, line := range saved.Lines() {
		_ = s.catalog.RestoreStock(ctx, line.ProductID, line.Quantity)
	}
	return saved, nil
}

// QuoteCart prices the current cart without placing an order. An empty
// cart quotes to zero across the board; shipping applies only to carts
// that would actually ship something.
func (s *Service) QuoteCart(ctx context.Context, customerID int64) (*ports.CartQuote, error) {
	lines, err := s.customers.Cart(ctx, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	quote := &ports.CartQuote{CustomerID: customerID}
	if len(lines) == 0 {
		return quote, nil
	}
	orderLines, subtotal, err := s.snapshotLines(ctx, lines)
	if err != nil {
		return nil, err
	}
	quote.Lines = orderLines
	quote.Breakdown = s.calculator.Quote(subtotal)
	return quote, nil
}

// snapshotLines joins cart lines with live catalog data and freezes names
// and unit prices into order lines. Availability is verified here so the
// later deduction loop only fails on true write races.
func (s *Service) snapshotLines(ctx context.Context, lines []ports.CartLine) ([]domain.Line, decimal.Decimal, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.catalog.Products(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, mapError(err)
	}
	byID := make(map[int64]*ports.ProductView, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	orderLines := make([]domain.Line, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: product %d", ErrInvalidInput, line.ProductID)
		}
		if line.Quantity > product.Stock {
			return nil, decimal.Zero, fmt.Errorf("%w: product %d has %d of %d requested units",
				ErrNotEnoughStock, product.ID, product.Stock, line.Quantity)
		}
		orderLine := domain.Line{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  line.Quantity,
		}
		orderLines = append(orderLines, orderLine)
		subtotal = subtotal.Add(orderLine.Subtotal())
	}
	return orderLines, subtotal.Round(2), nil
}

// deductStock removes the cart units from the catalog. On a mid-loop
// failure every already-deducted line is restored before the error is
// returned, so a rejected checkout never leaves stock partially consumed.
func (s *Service) deductStock(ctx context.Context, lines []ports.CartLine) error {
	deducted := make([]ports.CartLine, 0, len(lines))
	for _, line := range lines {
		if err := s.catalog.DeductStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.restoreStock(ctx, deducted)
			return fmt.Errorf("%w: product %d", ErrNotEnoughStock, line.ProductID)
		}
		deducted = append(deducted, line)
	}
	return nil
}

func (s *Service) restoreStock(ctx context.Context, lines []ports.CartLine) {
	for _, line := range lines {
		_ = s.catalog.RestoreStock(ctx, line.ProductID, line.Quantity)
	}
}

var _ ports.Service = (*Service)(nil)
