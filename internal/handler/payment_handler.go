package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PaymentHandler accepts payment requests. No gateway is integrated yet.
type PaymentHandler struct{}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// PaymentRequest represents a payment request for an order.
type PaymentRequest struct {
	OrderID uint             `json:"order_id" validate:"required"`
	Amount  *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// PaymentResponse echoes the request with the gateway status.
type PaymentResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    PaymentRequest `json:"data"`
}

// ProcessPayment godoc
// @Summary Submit a payment (gateway not yet available)
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	return c.JSON(http.StatusOK, PaymentResponse{
		Status:  "coming_soon",
		Message: "Payment gateway integration coming soon",
		Data:    req,
	})
}
