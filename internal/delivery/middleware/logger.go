package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: config.Env.Debug}
}

// Handle renders the handler's error itself, so the logged status matches the
// response and later middleware see a nil error.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		if !m.debug && err == nil && status < http.StatusInternalServerError {
			return nil
		}

		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).
			LogAttrs(ctx, levelForStatus(status), "HTTP Request", accessAttrs(c, time.Since(start), err)...)

		return nil
	}
}

func accessAttrs(c echo.Context, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", c.Response().Status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
