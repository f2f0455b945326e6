package service

import (
	"context"
	"fmt"

	"hivewatch/internal/domain/entity"
)

// PositionProvider returns the latest GPS fix of a tracked device.
type PositionProvider interface {
	// LatestPosition returns (nil, nil) when the device is unknown or has no fix yet.
	LatestPosition(ctx context.Context, identifier string) (*entity.Position, error)
}

// Provider error codes.
const (
	ProviderErrNotConfigured      = "traccar_not_configured"
	ProviderErrCredentialsMissing = "traccar_credentials_missing"
	ProviderErrGetFailed          = "traccar_get_failed"
	ProviderErrPositionsFailed    = "traccar_positions_failed"
	ProviderErrTransport          = "traccar_transport_failed"
)

// ProviderError is returned by a PositionProvider on configuration, transport or upstream failures.
type ProviderError struct {
	Code       string
	StatusCode int // Upstream HTTP status, 0 when not applicable.
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	msg := e.Code
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s:%d", e.Code, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
