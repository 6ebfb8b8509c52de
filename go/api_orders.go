package shopserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	checkouthttpmapper "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/http/mapper"
	checkoutdomain "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

// OrderAPI wires HTTP transport with the checkout bounded context service and workflows.
type OrderAPI struct {
	service   checkoutports.Service
	workflows checkoutports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service checkoutports.Service, workflows checkoutports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /v1/orders
// Place an order from the customer's cart
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload checkouthttpmapper.PlaceOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := checkoutports.PlaceOrderInput{
		CustomerID:     payload.CustomerID,
		IdempotencyKey: strings.TrimSpace(c.GetHeader("Idempotency-Key")),
	}
	order, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkouthttpmapper.FromDomain(order))
}

func (api *OrderAPI) placeOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkoutdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.PlaceOrder(ctx, input)
}

// Get /v1/orders
// List orders, optionally for one customer
func (api *OrderAPI) ListOrders(c *gin.Context) {
	var customerID int64
	if raw := c.Query("customerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		customerID = parsed
	}
	orders, err := api.service.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromDomainList(orders))
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromDomain(order))
}

// Put /v1/orders/:orderId/status
// Move the order along its lifecycle
func (api *OrderAPI) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload checkouthttpmapper.StatusUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.UpdateOrderStatus(c.Request.Context(), id, checkoutdomain.Status(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromDomain(order))
}

// Post /v1/orders/:orderId/cancel
// Cancel a pending order and return its stock
func (api *OrderAPI) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromDomain(order))
}
