package handlers

import (
	"net/http"
	"strconv"

	"shopmart/internal/common"
	"shopmart/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for the catalog
type ProductHandlers struct {
	productService services.ProductService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	products, err := h.productService.FindAll(c.Request().Context())
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// ListPopularProducts handles GET /api/products/popular
func (h *ProductHandlers) ListPopularProducts(c echo.Context) error {
	products, err := h.productService.FindPopular(c.Request().Context())
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateStock handles PATCH /api/products/:id/stock
func (h *ProductHandlers) UpdateStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return common.SendClientError(c, "Invalid product ID")
	}

	var req struct {
		Delta int `json:"delta" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "delta", "delta is required and must be non-zero")
	}

	product, err := h.productService.UpdateStock(c.Request().Context(), id, req.Delta)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}
