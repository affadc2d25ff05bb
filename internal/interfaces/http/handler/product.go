package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/backend/internal/domain/catalog"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// ProductHandler exposes the read-only catalog the console selects from
type ProductHandler struct {
	BaseHandler
	repo catalog.ProductRepository
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(repo catalog.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// ListProducts returns the full catalog
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetProductBySKU returns one product by SKU
func (h *ProductHandler) GetProductBySKU(c *gin.Context) {
	product, err := h.repo.FindBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ProductRoutes creates the route group for catalog endpoints
func ProductRoutes(handler *ProductHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/products")

	group.GET("", handler.ListProducts)
	group.GET("/:sku", handler.GetProductBySKU)

	return group
}
