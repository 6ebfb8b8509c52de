package observability

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
)

const tracerName = "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
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

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
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

func (s *Service) CreateProduct(ctx context.Context, input catalogports.CreateProductInput) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct",
		trace.WithAttributes(attribute.String("product.name", input.Name), attribute.String("product.category", input.Category)))
	defer span.End()

	s.logInfo(ctx, "creating product", slog.String("product.name", input.Name))
	result, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", input.Name))
	}
	s.metrics.recordCreated(ctx, result.Category)
	s.logInfo(ctx, "product created", slog.Int64("product.id", result.ID))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.size", len(result)))
	return result, nil
}

func (s *Service) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdatePrice",
		trace.WithAttributes(attribute.Int64("product.id", id), attribute.String("product.price", price.String())))
	defer span.End()

	s.logInfo(ctx, "updating price", slog.Int64("product.id", id), slog.String("price", price.String()))
	result, err := s.inner.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update price", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, category string) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateCategory",
		trace.WithAttributes(attribute.Int64("product.id", id), attribute.String("product.category", category)))
	defer span.End()

	result, err := s.inner.UpdateCategory(ctx, id, category)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update category", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) Restock(ctx context.Context, id int64, amount int) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Restock",
		trace.WithAttributes(attribute.Int64("product.id", id), attribute.Int("stock.amount", amount)))
	defer span.End()

	s.logInfo(ctx, "restocking product", slog.Int64("product.id", id), slog.Int("amount", amount))
	result, err := s.inner.Restock(ctx, id, amount)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to restock product", slog.Int64("product.id", id))
	}
	s.metrics.recordStockMoved(ctx, "restock", amount)
	return result, nil
}

func (s *Service) ReduceStock(ctx context.Context, id int64, amount int) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ReduceStock",
		trace.WithAttributes(attribute.Int64("product.id", id), attribute.Int("stock.amount", amount)))
	defer span.End()

	s.logInfo(ctx, "reducing stock", slog.Int64("product.id", id), slog.Int("amount", amount))
	result, err := s.inner.ReduceStock(ctx, id, amount)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to reduce stock", slog.Int64("product.id", id))
	}
	s.metrics.recordStockMoved(ctx, "reduce", amount)
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
	productsCreated metric.Int64Counter
	stockMovements  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productsCreated, _ := m.Int64Counter("catalog.service.products_created", metric.WithDescription("Number of products created"))
	stockMovements, _ := m.Int64Counter("catalog.service.stock_movements", metric.WithDescription("Units of stock moved in or out"))
	return serviceMetrics{productsCreated: productsCreated, stockMovements: stockMovements}
}

func (m serviceMetrics) recordCreated(ctx context.Context, category string) {
	if m.productsCreated != nil {
		m.productsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("product.category", category)))
	}
}

func (m serviceMetrics) recordStockMoved(ctx context.Context, direction string, amount int) {
	if m.stockMovements != nil {
		m.stockMovements.Add(ctx, int64(amount), metric.WithAttributes(attribute.String("stock.direction", direction)))
	}
}

var _ catalogports.Service = (*Service)(nil)
