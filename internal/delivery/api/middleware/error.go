package middleware

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const httpErrorCode = "HTTP_ERROR"

// ErrorMiddleware renders errors returned by handlers as error envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// rendered is what the client receives for an error.
type rendered struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	out, known := classify(err)
	if out.status >= http.StatusInternalServerError {
		req := c.Request()
		msg := "Request failed"
		if !known {
			msg = "Unhandled error"
		}
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), msg,
			slog.String("code", out.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
	}

	_ = response.Error(c, out.status, out.code, out.message, out.details)
}

// classify maps err to its envelope. known is false for errors that are
// neither an AppError nor an echo.HTTPError; those never leak their text.
func classify(err error) (out rendered, known bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		out = rendered{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
		if d := appErr.Details(); d != "" {
			out.details = d
		}

		return out, true
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		out = rendered{status: httpErr.Code, code: httpErrorCode, message: http.StatusText(httpErr.Code)}
		if msg, ok := httpErr.Message.(string); ok {
			out.message = msg
		}

		return out, true
	}

	return rendered{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: "Internal server error, please try again later",
	}, false
}
