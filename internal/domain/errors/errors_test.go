package errors

import (
	"net/http"
	"testing"

	"hivewatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("invalid sensor id")

	assert.Equal(t, "invalid sensor id", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidThreshold))
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrForbidden.WrapMessage("sensor does not belong to the current company")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to find hive by ID")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to find hive by ID: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))
}
