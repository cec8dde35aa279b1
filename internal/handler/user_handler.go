package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"techshop/internal/model"
	"techshop/internal/service"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest carries the fields to change. Empty fields are left as they are.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

func (h *UserHandler) currentUser(c echo.Context) (*model.User, error) {
	email, err := subject(c)
	if err != nil {
		return nil, err
	}
	return h.svc.GetByEmail(c.Request().Context(), email)
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.currentUser(c)
	if err != nil {
		return errorResponse(c, err)
	}

	updated, err := h.svc.UpdateProfile(c.Request().Context(), user, model.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Activity godoc
// @Summary Current user order activity
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me/activity [get]
func (h *UserHandler) Activity(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return errorResponse(c, err)
	}

	activity, err := h.svc.Activity(c.Request().Context(), user)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}
