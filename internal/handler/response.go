package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"techshop/internal/auth"
	"techshop/internal/errors"
)

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// errorResponse maps a service error to an echo HTTP error carrying an ErrorResponse body.
// The original error is kept as the internal cause so the request logger records it.
func errorResponse(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// invalidBody reports a body that could not be decoded.
func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(c echo.Context, err error) error {
	return errorResponse(c, fmt.Errorf("%w: %s", errors.ErrValidation, err.Error()))
}

// subject returns the authenticated token subject set by the JWT middleware.
func subject(c echo.Context) (string, error) {
	sub, ok := c.Get(auth.ContextKey).(string)
	if !ok || sub == "" {
		return "", errors.ErrUnauthenticated
	}
	return sub, nil
}
