package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	checkoutdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

const tracerName = "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/observability/service"

// Service decorates the checkout service with tracing, logging, and metrics.
type Service struct {
	inner   checkoutports.Service
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

// New wraps the core checkout service.
func New(inner checkoutports.Service, opts ...Option) checkoutports.Service {
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

func (s *Service) PlaceOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.PlaceOrder",
		trace.WithAttributes(attribute.Int64("customer.id", input.CustomerID)))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int64("customer.id", input.CustomerID))
	result, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.Int64("customer.id", input.CustomerID))
	}
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	s.metrics.recordPlaced(ctx, result)
	s.logInfo(ctx, "order placed",
		slog.Int64("order.id", result.ID),
		slog.String("order.total", result.Total.StringFixed(2)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]*checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ListOrders",
		trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, customerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.Int64("customer.id", customerID))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status checkoutdomain.Status) (*checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.UpdateOrderStatus",
		trace.WithAttributes(attribute.Int64("order.id", id), attribute.String("order.status", string(status))))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.Int64("order.id", id), slog.String("status", string(status)))
	result, err := s.inner.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.Int64("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	return result, nil
}

func (s *Service) CancelOrder(ctx context.Context, id int64) (*checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.CancelOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "cancelling order", slog.Int64("order.id", id))
	result, err := s.inner.CancelOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to cancel order", slog.Int64("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	return result, nil
}

func (s *Service) QuoteCart(ctx context.Context, customerID int64) (*checkoutports.CartQuote, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.QuoteCart",
		trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	result, err := s.inner.QuoteCart(ctx, customerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to quote cart", slog.Int64("customer.id", customerID))
	}
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
	ordersPlaced      metric.Int64Counter
	orderValue        metric.Float64Counter
	statusTransitions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("checkout.service.orders_placed", metric.WithDescription("Number of orders placed"))
	orderValue, _ := m.Float64Counter("checkout.service.order_value", metric.WithDescription("Gross value of placed orders"))
	statusTransitions, _ := m.Int64Counter("checkout.service.status_transitions", metric.WithDescription("Order status transitions applied"))
	return serviceMetrics{ordersPlaced: ordersPlaced, orderValue: orderValue, statusTransitions: statusTransitions}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, order *checkoutdomain.Order) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.orderValue != nil {
		value, _ := order.Total.Float64()
		m.orderValue.Add(ctx, value)
	}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status checkoutdomain.Status) {
	if m.statusTransitions != nil {
		m.statusTransitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ checkoutports.Service = (*Service)(nil)
