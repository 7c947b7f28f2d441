package errors

import (
	"net/http"
	"testing"

	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_CopiesStillMatchSentinel(t *testing.T) {
	custom := ErrUserAlreadyExists.WithMessagef("User already exists for email: %s", "a@b.c")
	wrapped := errors.Wrap(custom, "register")

	assert.True(t, errors.Is(wrapped, ErrUserAlreadyExists))
	assert.False(t, errors.Is(wrapped, ErrUserNotFound))
	assert.Equal(t, "User already exists for email: a@b.c", custom.Message())
	assert.Equal(t, http.StatusConflict, custom.HTTPCode())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrCardNotFound.WithDetails("card_123").WrapMessage("delete card")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CARD_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "card_123", appErr.Details())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestDatabaseExecuteError_UnwrapsDriverError(t *testing.T) {
	driverErr := errors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "failed to create card")

	assert.True(t, errors.Is(err, driverErr))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection reset")
}
