package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"techshop/internal/model"
	"techshop/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	catalog service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// CreateProductRequest represents a new catalog entry.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"number"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Exact category name"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := model.ProductFilter{Limit: service.DefaultListLimit}
	err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		Int("skip", &filter.Skip).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return validationFailed(c, err)
	}

	products, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product data"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.catalog.Create(c.Request().Context(), &model.Product{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}
