package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customershttpmapper "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/adapters/http/mapper"
	customersports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customersports.Service
}

// NewCustomerAPI creates a CustomerAPI backed by the provided service.
func NewCustomerAPI(service customersports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Post /v1/customers
// Register a new customer
func (api *CustomerAPI) RegisterCustomer(c *gin.Context) {
	var payload customershttpmapper.RegisterCustomer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	customer, err := api.service.RegisterCustomer(c.Request.Context(), customershttpmapper.ToRegisterInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customershttpmapper.FromDomain(customer))
}

// Get /v1/customers/:customerId
// Find customer by ID
func (api *CustomerAPI) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	customer, err := api.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customershttpmapper.FromDomain(customer))
}

// Put /v1/customers/:customerId/address
// Replace the postal address; an empty body clears it
func (api *CustomerAPI) UpdateAddress(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	var payload *customershttpmapper.Address
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	customer, err := api.service.UpdateAddress(c.Request.Context(), id, customershttpmapper.ToDomainAddress(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customershttpmapper.FromDomain(customer))
}

// Get /v1/customers/:customerId/cart
// Current cart priced against the live catalog
func (api *CustomerAPI) GetCart(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	view, err := api.service.GetCart(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customershttpmapper.FromCartView(view))
}

// Post /v1/customers/:customerId/cart/items
// Add units of a product to the cart
func (api *CustomerAPI) AddCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	var payload customershttpmapper.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	view, err := api.service.AddToCart(c.Request.Context(), id, payload.ProductID, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customershttpmapper.FromCartView(view))
}

// Delete /v1/customers/:customerId/cart/items/:productId
// Remove a product from the cart
func (api *CustomerAPI) RemoveCartItem(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	view, err := api.service.RemoveFromCart(c.Request.Context(), customerID, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customershttpmapper.FromCartView(view))
}

// Delete /v1/customers/:customerId/cart
// Empty the cart
func (api *CustomerAPI) ClearCart(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	if err := api.service.ClearCart(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
