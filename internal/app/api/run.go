package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	shopserver "github.com/mohammedHatemm/go-shop-api/go"

	catalogmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/application"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"

	customersgateway "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/catalog"
	customersmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/memory"
	customersobs "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/observability"
	customerspostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/application"
	customersports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"

	checkoutcatalog "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/catalog"
	checkoutcustomers "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/customers"
	checkoutmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/memory"
	checkoutobs "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/observability"
	checkoutpostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/persistence/postgres"
	checkoutworkflowsadapter "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"

	"github.com/mohammedHatemm/go-shop-api/internal/clients/http/fulfillment"
	platformmigrations "github.com/mohammedHatemm/go-shop-api/internal/platform/migrations"
	platformobservability "github.com/mohammedHatemm/go-shop-api/internal/platform/observability"
	platformpostgres "github.com/mohammedHatemm/go-shop-api/internal/platform/postgres"
)

// Run boots the shop HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "shop-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	catalogService := buildCatalogService(db, instruments)
	customersService := buildCustomersService(db, catalogService.repo, instruments)
	checkoutService := buildCheckoutService(db, cfg, catalogService.service, customersService, instruments, logger)

	var checkoutWorkflows checkoutports.WorkflowOrchestrator = checkoutworkflowsadapter.NewInlineCheckoutWorkflows(checkoutService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline PlaceOrder", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		checkoutWorkflows = checkoutworkflowsadapter.NewTemporalCheckoutWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := shopserver.ApiHandleFunctions{
		CatalogAPI:  shopserver.NewCatalogAPI(catalogService.service),
		CustomerAPI: shopserver.NewCustomerAPI(customersService),
		OrderAPI:    shopserver.NewOrderAPI(checkoutService, checkoutWorkflows),
		PricingAPI:  shopserver.NewPricingAPI(checkoutService),
	}

	router := shopserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("shop API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("shop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations", slog.String("error", err.Error()))
	}
	logger.Info("repositories configured with postgres")
	return db, func() { _ = sqlDB.Close() }
}

type catalogStack struct {
	repo    catalogports.Repository
	service catalogports.Service
}

func buildCatalogService(db *gorm.DB, instruments *platformobservability.Instruments) catalogStack {
	var repo catalogports.Repository = catalogmemory.NewRepository()
	if db != nil {
		repo = catalogpostgres.NewRepository(db)
	}
	service := catalogobs.New(
		catalogapp.NewService(repo),
		catalogobs.WithLogger(instruments.Logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	return catalogStack{repo: repo, service: service}
}

func buildCustomersService(db *gorm.DB, catalogRepo catalogports.Repository, instruments *platformobservability.Instruments) customersports.Service {
	var repo customersports.Repository = customersmemory.NewRepository()
	if db != nil {
		repo = customerspostgres.NewRepository(db)
	}
	return customersobs.New(
		customersapp.NewService(repo, customersgateway.NewGateway(catalogRepo)),
		customersobs.WithLogger(instruments.Logger),
		customersobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customersobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
}

func buildCheckoutService(
	db *gorm.DB,
	cfg Config,
	catalogService catalogports.Service,
	customersService customersports.Service,
	instruments *platformobservability.Instruments,
	logger *slog.Logger,
) checkoutports.Service {
	var repo checkoutports.Repository = checkoutmemory.NewRepository()
	var keys checkoutports.IdempotencyStore = checkoutmemory.NewIdempotencyStore()
	if db != nil {
		repo = checkoutpostgres.NewRepository(db)
		keys = checkoutpostgres.NewIdempotencyStore(db)
	}
	var notifier checkoutports.FulfillmentNotifier
	if cfg.FulfillmentURL != "" {
		fulfillmentClient, err := fulfillment.NewClient(cfg.FulfillmentURL, &http.Client{Timeout: 5 * time.Second})
		if err != nil {
			logger.Warn("fulfillment notifications disabled", slog.String("error", err.Error()))
		} else {
			notifier = fulfillmentClient
			logger.Info("fulfillment notifications enabled", slog.String("url", cfg.FulfillmentURL))
		}
	}
	return checkoutobs.New(
		checkoutapp.NewService(
			repo,
			keys,
			checkoutcustomers.NewGateway(customersService),
			checkoutcatalog.NewGateway(catalogService),
			cfg.Calculator(),
			notifier,
		),
		checkoutobs.WithLogger(instruments.Logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
