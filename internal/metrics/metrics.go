package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)

	// OrdersPlacedTotal counts orders that completed the checkout workflow.
	OrdersPlacedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "orders_placed_total", Help: "Orders persisted by the checkout workflow"},
	)
	// OrderLinesSkippedTotal counts requested lines dropped because the product does not exist.
	OrderLinesSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "order_lines_skipped_total", Help: "Order lines dropped for unknown product ids"},
	)
	// LoginFailuresTotal counts rejected login attempts.
	LoginFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "login_failures_total", Help: "Rejected login attempts"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		OrdersPlacedTotal,
		OrderLinesSkippedTotal,
		LoginFailuresTotal,
	)
}

// Middleware records request counts and latencies labelled by route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
