package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	cataloghttpmapper "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Post /v1/products
// Add a product to the catalog
func (api *CatalogAPI) CreateProduct(c *gin.Context) {
	var payload cataloghttpmapper.CreateProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input, err := cataloghttpmapper.ToCreateInput(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cataloghttpmapper.FromDomain(product))
}

// Get /v1/products
// List the catalog
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainList(products))
}

// Get /v1/products/:productId
// Find product by ID
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}

// Put /v1/products/:productId/price
// Update the unit price
func (api *CatalogAPI) UpdatePrice(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.PriceUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	price, err := decimal.NewFromString(payload.UnitPrice)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.UpdatePrice(c.Request.Context(), id, price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}

// Put /v1/products/:productId/category
// Update the category
func (api *CatalogAPI) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.CategoryUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.UpdateCategory(c.Request.Context(), id, payload.Category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}

// Post /v1/products/:productId/restock
// Add units to stock
func (api *CatalogAPI) Restock(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.StockMovement
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.Restock(c.Request.Context(), id, payload.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}

// Post /v1/products/:productId/reduce-stock
// Remove units from stock
func (api *CatalogAPI) ReduceStock(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.StockMovement
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.ReduceStock(c.Request.Context(), id, payload.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}
