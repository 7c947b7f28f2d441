package middleware

import (
	"strconv"
	"time"

	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Observe must run inside the error handler's reach so the final status is known.
func (m *MetricsMiddleware) Observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Render now so the recorded status is the one the client sees.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)

		m.metrics.HTTPRequests.WithLabelValues(route, c.Request().Method, status).Inc()
		m.metrics.HTTPDuration.WithLabelValues(route, c.Request().Method).Observe(time.Since(start).Seconds())

		return nil
	}
}
