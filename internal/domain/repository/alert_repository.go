package repository

import (
	"context"

	"hivewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertRepository defines sensor alert persistence.
type AlertRepository interface {
	// CreateAlert persists a new alert and fills its ID and CreatedAt.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindUnacknowledgedAlerts returns up to limit unacknowledged alerts of a kind, newest first.
	FindUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind, limit int) ([]*entity.Alert, error)

	// CountUnacknowledgedAlerts counts the unacknowledged alerts of a kind.
	CountUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind) (int64, error)

	// DeleteUnacknowledgedAlerts removes the unacknowledged alerts of a kind and returns how many were removed.
	DeleteUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind) (int64, error)
}
