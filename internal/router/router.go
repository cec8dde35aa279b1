package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"techshop/internal/auth"
	"techshop/internal/config"
	apperrors "techshop/internal/errors"
	"techshop/internal/handler"
	"techshop/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	// Credentials are never allowed together with the "*" wildcard.
	origins := cfg.CORSOrigins()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: !(len(origins) == 1 && origins[0] == "*"),
	}))
	e.Use(metrics.Middleware())
	e.Use(requestLogger(log))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", handler.Root)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Bearer token auth; the verified subject is stored under auth.ContextKey.
	secured := echojwt.WithConfig(echojwt.Config{
		ContextKey: auth.ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			sub, err := jwtService.Verify(token)
			if err != nil {
				return nil, err
			}
			return sub, nil
		},
		ErrorHandler: jwtErrorHandler,
	})

	authGroup := e.Group("/auth", authRateLimiter())
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", userHandler.Me, secured)
	authGroup.PUT("/me", userHandler.UpdateMe, secured)
	authGroup.GET("/me/activity", userHandler.Activity, secured)

	e.GET("/products", productHandler.ListProducts)
	e.POST("/products", productHandler.CreateProduct)

	e.POST("/orders", orderHandler.CreateOrder, secured)
	e.GET("/orders/me", orderHandler.ListMyOrders, secured)

	e.POST("/payments", paymentHandler.ProcessPayment)
	e.POST("/seed_products", seedHandler.SeedProducts)
}

// jwtErrorHandler distinguishes a missing token from an invalid or expired one.
func jwtErrorHandler(c echo.Context, err error) error {
	cause := apperrors.ErrUnauthenticated
	switch {
	case errors.Is(err, apperrors.ErrExpiredToken):
		cause = apperrors.ErrExpiredToken
	case errors.Is(err, apperrors.ErrInvalidToken):
		cause = apperrors.ErrInvalidToken
	}

	httpErr := apperrors.MapErrorToHTTP(cause)
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// authRateLimiter bounds per-IP request rate on the credential endpoints.
func authRateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(10),
			Burst:     30,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Error: "rate limit exceeded",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				event = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				event = log.Warn()
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
