package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	customerdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	customerports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

const tracerName = "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/observability/service"

// Service decorates the customers service with tracing, logging, and metrics.
type Service struct {
	inner   customerports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core customers service.
func New(inner customerports.Service, opts ...Option) customerports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) RegisterCustomer(ctx context.Context, input customerports.RegisterCustomerInput) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.RegisterCustomer")
	defer span.End()

	s.logInfo(ctx, "registering customer", slog.String("customer.email", input.Email))
	result, err := s.inner.RegisterCustomer(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register customer")
	}
	s.metrics.recordRegistered(ctx)
	s.logInfo(ctx, "customer registered", slog.Int64("customer.id", result.ID))
	return result, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.GetCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := s.inner.GetCustomer(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load customer", slog.Int64("customer.id", id))
	}
	return result, nil
}

func (s *Service) UpdateAddress(ctx context.Context, id int64, address *customerdomain.Address) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.UpdateAddress", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := s.inner.UpdateAddress(ctx, id, address)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update address", slog.Int64("customer.id", id))
	}
	return result, nil
}

func (s *Service) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*customerports.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.AddToCart",
		trace.WithAttributes(
			attribute.Int64("customer.id", customerID),
			attribute.Int64("product.id", productID),
			attribute.Int("cart.quantity", quantity),
		))
	defer span.End()

	s.logInfo(ctx, "adding to cart",
		slog.Int64("customer.id", customerID), slog.Int64("product.id", productID), slog.Int("quantity", quantity))
	result, err := s.inner.AddToCart(ctx, customerID, productID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add to cart",
			slog.Int64("customer.id", customerID), slog.Int64("product.id", productID))
	}
	s.metrics.recordCartItems(ctx, quantity)
	span.SetAttributes(attribute.Int("cart.lines", len(result.Lines)))
	return result, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, customerID, productID int64) (*customerports.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.RemoveFromCart",
		trace.WithAttributes(attribute.Int64("customer.id", customerID), attribute.Int64("product.id", productID)))
	defer span.End()

	result, err := s.inner.RemoveFromCart(ctx, customerID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove from cart",
			slog.Int64("customer.id", customerID), slog.Int64("product.id", productID))
	}
	return result, nil
}

func (s *Service) ClearCart(ctx context.Context, customerID int64) error {
	ctx, span := s.tracer.Start(ctx, "CustomersService.ClearCart", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	s.logInfo(ctx, "clearing cart", slog.Int64("customer.id", customerID))
	if err := s.inner.ClearCart(ctx, customerID); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart", slog.Int64("customer.id", customerID))
	}
	return nil
}

func (s *Service) GetCart(ctx context.Context, customerID int64) (*customerports.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CustomersService.GetCart", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	result, err := s.inner.GetCart(ctx, customerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart", slog.Int64("customer.id", customerID))
	}
	span.SetAttributes(attribute.Int("cart.lines", len(result.Lines)), attribute.String("cart.total", result.Total.String()))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	customersRegistered metric.Int64Counter
	cartItemsAdded      metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	customersRegistered, _ := m.Int64Counter("customers.service.registered", metric.WithDescription("Number of customers registered"))
	cartItemsAdded, _ := m.Int64Counter("customers.service.cart_items_added", metric.WithDescription("Units added to carts"))
	return serviceMetrics{customersRegistered: customersRegistered, cartItemsAdded: cartItemsAdded}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.customersRegistered != nil {
		m.customersRegistered.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCartItems(ctx context.Context, quantity int) {
	if m.cartItemsAdded != nil {
		m.cartItemsAdded.Add(ctx, int64(quantity))
	}
}

var _ customerports.Service = (*Service)(nil)
