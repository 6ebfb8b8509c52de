package shopserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	checkouthttpmapper "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/adapters/http/mapper"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

// PricingAPI wires HTTP transport with cart quoting.
type PricingAPI struct {
	service checkoutports.Service
}

// NewPricingAPI creates a PricingAPI backed by the checkout service.
func NewPricingAPI(service checkoutports.Service) PricingAPI {
	return PricingAPI{service: service}
}

// Get /v1/pricing/quote
// Price the customer's cart without placing an order
func (api *PricingAPI) QuoteCart(c *gin.Context) {
	raw := c.Query("customerId")
	if raw == "" {
		respondError(c, http.StatusBadRequest, errors.New("customerId query parameter is required"))
		return
	}
	customerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	quote, err := api.service.QuoteCart(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromQuote(quote))
}
