//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/mohammedHatemm/go-shop-api/test/pact"

	shopserver "github.com/mohammedHatemm/go-shop-api/go"
	catalogmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/application"
	catalogdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	checkoutcatalog "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/catalog"
	checkoutcustomers "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/customers"
	checkoutmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/memory"
	checkoutobs "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/observability"
	checkoutworkflows "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/pricing"
	customersgateway "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/catalog"
	customersmemory "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/memory"
	customersobs "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/observability"
	customersapp "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/application"
	customersdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShopProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateProductExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedProduct(t, pacttest.ExistingProductID)
			}
			return nil, nil
		},
		pacttest.StateProductMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateCartReady: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedProduct(t, pacttest.ExistingProductID)
				app.seedCustomerWithCart(t, pacttest.CheckoutCustomerID, pacttest.ExistingProductID)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalogRepo   *catalogmemory.Repository
	customersRepo *customersmemory.Repository
	server        *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	catalogService := catalogobs.New(catalogapp.NewService(catalogRepo))

	customersRepo := customersmemory.NewRepository()
	customersService := customersobs.New(
		customersapp.NewService(customersRepo, customersgateway.NewGateway(catalogRepo)),
	)

	checkoutService := checkoutobs.New(checkoutapp.NewService(
		checkoutmemory.NewRepository(),
		checkoutmemory.NewIdempotencyStore(),
		checkoutcustomers.NewGateway(customersService),
		checkoutcatalog.NewGateway(catalogService),
		pricing.NewDefaultCalculator(),
		nil,
	))
	workflows := checkoutworkflows.NewInlineCheckoutWorkflows(checkoutService)

	handlers := shopserver.ApiHandleFunctions{
		CatalogAPI:  shopserver.NewCatalogAPI(catalogService),
		CustomerAPI: shopserver.NewCustomerAPI(customersService),
		OrderAPI:    shopserver.NewOrderAPI(checkoutService, workflows),
		PricingAPI:  shopserver.NewPricingAPI(checkoutService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = shopserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		catalogRepo:   catalogRepo,
		customersRepo: customersRepo,
		server:        server,
	}
}

// seedProduct upserts the product with a known ID and enough stock for
// repeated checkout interactions.
func (a *contractProviderApp) seedProduct(t testing.TB, id int64) {
	t.Helper()
	product, err := catalogdomain.NewProduct(id, "Aurora Desk Lamp", decimal.NewFromFloat(25.00), "Lighting", 25)
	require.NoError(t, err)
	_, err = a.catalogRepo.Save(context.Background(), product)
	require.NoError(t, err)
}

// seedCustomerWithCart upserts a customer whose cart holds the seeded product.
func (a *contractProviderApp) seedCustomerWithCart(t testing.TB, customerID, productID int64) {
	t.Helper()
	name, email := pacttest.ExampleCustomer()
	customer, err := customersdomain.NewCustomer(customerID, name, email)
	require.NoError(t, err)
	require.NoError(t, customer.Cart.AddLine(productID, pacttest.CartQuantity))
	_, err = a.customersRepo.Save(context.Background(), customer)
	require.NoError(t, err)
}
