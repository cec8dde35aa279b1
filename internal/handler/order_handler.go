package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "techshop/internal/errors"
	"techshop/internal/model"
	"techshop/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
	userService  service.UserService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService, userService service.UserService) *OrderHandler {
	return &OrderHandler{orderService: orderService, userService: userService}
}

// OrderLineRequest is one requested product.
type OrderLineRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest represents an order placement request.
type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" validate:"required"`
}

// buyer resolves the token subject. A subject that no longer names a user is treated as
// unauthenticated rather than not found.
func (h *OrderHandler) buyer(c echo.Context) (*model.User, error) {
	email, err := subject(c)
	if err != nil {
		return nil, err
	}
	user, err := h.userService.GetByEmail(c.Request().Context(), email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, err
}

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order lines"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.buyer(c)
	if err != nil {
		return errorResponse(c, err)
	}

	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), user.ID, lines)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// ListMyOrders godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/me [get]
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	user, err := h.buyer(c)
	if err != nil {
		return errorResponse(c, err)
	}

	orders, err := h.orderService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
