package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusResponse reports that the API is up.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Root godoc
// @Summary API status
// @Tags status
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "TechShop API is running"})
}
