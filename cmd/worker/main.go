package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/application"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"

	customersgateway "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/catalog"
	customersmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/application"
	customersports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"

	checkoutcatalog "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/catalog"
	checkoutcustomers "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/customers"
	checkoutmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/memory"
	checkoutpostgres "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/persistence/postgres"
	checkoutapp "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"

	appapi "github.com/mohammedHatemm/go-shop-api/internal/app/api"
	"github.com/mohammedHatemm/go-shop-api/internal/clients/http/fulfillment"
	platformmigrations "github.com/mohammedHatemm/go-shop-api/internal/platform/migrations"
	platformobservability "github.com/mohammedHatemm/go-shop-api/internal/platform/observability"
	platformpostgres "github.com/mohammedHatemm/go-shop-api/internal/platform/postgres"
	checkoutactivities "github.com/mohammedHatemm/go-shop-api/internal/platform/temporal/activities/checkout"
	checkoutworkflows "github.com/mohammedHatemm/go-shop-api/internal/platform/temporal/workflows/checkout"
)

func main() {
	ctx := context.Background()
	const serviceName = "shop-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := appapi.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			logger.Warn("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	checkoutService, notifier := buildCheckoutService(db, cfg, logger)
	activities := checkoutactivities.NewActivities(checkoutService, notifier)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, checkoutworkflows.CheckoutTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(checkoutworkflows.PlaceOrderWorkflow, workflow.RegisterOptions{Name: checkoutworkflows.PlaceOrderWorkflowName})
	w.RegisterActivityWithOptions(activities.PlaceOrder, activity.RegisterOptions{Name: checkoutactivities.PlaceOrderActivityName})
	w.RegisterActivityWithOptions(activities.NotifyFulfillment, activity.RegisterOptions{Name: checkoutactivities.NotifyFulfillmentActivityName})

	logger.Info("worker listening", slog.String("taskQueue", checkoutworkflows.CheckoutTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

// buildCheckoutService assembles the checkout stack the activities call into.
// The service is built without a notifier; fulfillment runs as its own
// activity so retries do not double-notify through the service path.
func buildCheckoutService(db *gorm.DB, cfg appapi.Config, logger *slog.Logger) (checkoutports.Service, checkoutports.FulfillmentNotifier) {
	var catalogRepo catalogports.Repository = catalogmemory.NewRepository()
	var customersRepo customersports.Repository = customersmemory.NewRepository()
	var orderRepo checkoutports.Repository = checkoutmemory.NewRepository()
	var keys checkoutports.IdempotencyStore = checkoutmemory.NewIdempotencyStore()
	if db != nil {
		catalogRepo = catalogpostgres.NewRepository(db)
		customersRepo = customerspostgres.NewRepository(db)
		orderRepo = checkoutpostgres.NewRepository(db)
		keys = checkoutpostgres.NewIdempotencyStore(db)
	} else {
		logger.Warn("worker running against in-memory repositories; orders will not survive restarts")
	}

	catalogService := catalogapp.NewService(catalogRepo)
	customersService := customersapp.NewService(customersRepo, customersgateway.NewGateway(catalogRepo))

	var notifier checkoutports.FulfillmentNotifier
	if cfg.FulfillmentURL != "" {
		fulfillmentClient, err := fulfillment.NewClient(cfg.FulfillmentURL, &http.Client{Timeout: 5 * time.Second})
		if err != nil {
			logger.Warn("fulfillment notifications disabled", slog.String("error", err.Error()))
		} else {
			notifier = fulfillmentClient
		}
	}

	service := checkoutapp.NewService(
		orderRepo,
		keys,
		checkoutcustomers.NewGateway(customersService),
		checkoutcatalog.NewGateway(catalogService),
		cfg.Calculator(),
		nil,
	)
	return service, notifier
}
