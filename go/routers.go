package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route defines the parameters for an api endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined api endpoints.
type Routes map[string][]Route

// ApiHandleFunctions holds the api handlers per surface.
type ApiHandleFunctions struct {
	CatalogAPI  CatalogAPI
	CustomerAPI CustomerAPI
	OrderAPI    OrderAPI
	PricingAPI  PricingAPI
}

// NewRouter returns a new router with the api handlers mounted.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine mounts the api handlers on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			if route.HandlerFunc == nil {
				route.HandlerFunc = DefaultHandleFunc
			}
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPut:
				router.PUT(route.Pattern, route.HandlerFunc)
			case http.MethodPatch:
				router.PATCH(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

// DefaultHandleFunc answers for routes without a bound handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"CatalogAPI": {
			{
				"CreateProduct",
				http.MethodPost,
				"/v1/products",
				handleFunctions.CatalogAPI.CreateProduct,
			},
			{
				"ListProducts",
				http.MethodGet,
				"/v1/products",
				handleFunctions.CatalogAPI.ListProducts,
			},
			{
				"GetProduct",
				http.MethodGet,
				"/v1/products/:productId",
				handleFunctions.CatalogAPI.GetProduct,
			},
			{
				"UpdatePrice",
				http.MethodPut,
				"/v1/products/:productId/price",
				handleFunctions.CatalogAPI.UpdatePrice,
			},
			{
				"UpdateCategory",
				http.MethodPut,
				"/v1/products/:productId/category",
				handleFunctions.CatalogAPI.UpdateCategory,
			},
			{
				"Restock",
				http.MethodPost,
				"/v1/products/:productId/restock",
				handleFunctions.CatalogAPI.Restock,
			},
			{
				"ReduceStock",
				http.MethodPost,
				"/v1/products/:productId/reduce-stock",
				handleFunctions.CatalogAPI.ReduceStock,
			},
		},
		"CustomerAPI": {
			{
				"RegisterCustomer",
				http.MethodPost,
				"/v1/customers",
				handleFunctions.CustomerAPI.RegisterCustomer,
			},
			{
				"GetCustomer",
				http.MethodGet,
				"/v1/customers/:customerId",
				handleFunctions.CustomerAPI.GetCustomer,
			},
			{
				"UpdateAddress",
				http.MethodPut,
				"/v1/customers/:customerId/address",
				handleFunctions.CustomerAPI.UpdateAddress,
			},
			{
				"GetCart",
				http.MethodGet,
				"/v1/customers/:customerId/cart",
				handleFunctions.CustomerAPI.GetCart,
			},
			{
				"AddCartItem",
				http.MethodPost,
				"/v1/customers/:customerId/cart/items",
				handleFunctions.CustomerAPI.AddCartItem,
			},
			{
				"RemoveCartItem",
				http.MethodDelete,
				"/v1/customers/:customerId/cart/items/:productId",
				handleFunctions.CustomerAPI.RemoveCartItem,
			},
			{
				"ClearCart",
				http.MethodDelete,
				"/v1/customers/:customerId/cart",
				handleFunctions.CustomerAPI.ClearCart,
			},
		},
		"OrderAPI": {
			{
				"PlaceOrder",
				http.MethodPost,
				"/v1/orders",
				handleFunctions.OrderAPI.PlaceOrder,
			},
			{
				"ListOrders",
				http.MethodGet,
				"/v1/orders",
				handleFunctions.OrderAPI.ListOrders,
			},
			{
				"GetOrder",
				http.MethodGet,
				"/v1/orders/:orderId",
				handleFunctions.OrderAPI.GetOrder,
			},
			{
				"UpdateOrderStatus",
				http.MethodPut,
				"/v1/orders/:orderId/status",
				handleFunctions.OrderAPI.UpdateOrderStatus,
			},
			{
				"CancelOrder",
				http.MethodPost,
				"/v1/orders/:orderId/cancel",
				handleFunctions.OrderAPI.CancelOrder,
			},
		},
		"PricingAPI": {
			{
				"QuoteCart",
				http.MethodGet,
				"/v1/pricing/quote",
				handleFunctions.PricingAPI.QuoteCart,
			},
		},
	}
}
