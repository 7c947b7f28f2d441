// Package response renders the JSON envelopes every endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps handler output.
type SuccessResponse struct {
	Data    any       `json:"data"`
	Message string    `json:"message"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse repeats the message at the top level for clients that only read that field.
type ErrorResponse struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"requestId"`
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
		Meta:    meta(c),
	})
}

// Error writes an error envelope. Details are dropped on server and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:    meta(c),
	})
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
