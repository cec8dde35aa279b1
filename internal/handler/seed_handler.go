package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"techshop/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	catalog service.CatalogService
	policy  service.SeedPolicy
}

// NewSeedHandler creates a new seed handler using the configured policy.
func NewSeedHandler(catalog service.CatalogService, policy service.SeedPolicy) *SeedHandler {
	return &SeedHandler{catalog: catalog, policy: policy}
}

// SeedProductsResponse represents the seed response.
type SeedProductsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedProducts godoc
// @Summary Load the demo product catalog
// @Tags seed
// @Produce json
// @Success 200 {object} SeedProductsResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed_products [post]
func (h *SeedHandler) SeedProducts(c echo.Context) error {
	count, err := h.catalog.Seed(c.Request().Context(), h.policy)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, SeedProductsResponse{
		Message: "Data seeded successfully",
		Count:   count,
	})
}
