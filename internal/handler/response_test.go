package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techshop/internal/auth"
	"techshop/internal/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   errors.ErrorResponse
		wantHeader string
	}{
		{
			name:       "internal error is hidden",
			err:        fmt.Errorf("create order: %w", fmt.Errorf("deadlock detected")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   errors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"},
		},
		{
			name:       "unauthorized sets challenge",
			err:        errors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   errors.ErrorResponse{Error: "incorrect username or password", Code: "INVALID_CREDENTIALS"},
			wantHeader: "Bearer",
		},
		{
			name:       "not found",
			err:        errors.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   errors.ErrorResponse{Error: "user not found", Code: "USER_NOT_FOUND"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			err := errorResponse(c, tt.err)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantStatus, he.Code)
			assert.Equal(t, tt.wantBody, he.Message)
			assert.Equal(t, tt.err, he.Internal)
			assert.Equal(t, tt.wantHeader, rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func TestSubject(t *testing.T) {
	c, _ := newContext()
	_, err := subject(c)
	assert.ErrorIs(t, err, errors.ErrUnauthenticated)

	c.Set(auth.ContextKey, "ana@example.com")
	sub, err := subject(c)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", sub)
}
