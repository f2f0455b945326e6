// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
)

// ErrSensorNotFound is returned when a sensor is not found.
var ErrSensorNotFound = errors.New("sensor not found")

// SensorRepository defines the sensor operations needed by geofence monitoring.
type SensorRepository interface {
	// FindSensorByID retrieves a sensor by its ID.
	FindSensorByID(ctx context.Context, id uuid.UUID) (*entity.Sensor, error)

	// FindSensorByIDForUpdate retrieves a sensor and locks its row until the transaction ends.
	// Only meaningful inside TransactionManager.Execute.
	FindSensorByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Sensor, error)

	// FindArmedGPSSensors lists active GPS sensors that are armed with both reference coordinates.
	FindArmedGPSSensors(ctx context.Context) ([]*entity.Sensor, error)

	// FindGPSSensorsByApiary lists the GPS sensors of every hive in an apiary.
	FindGPSSensorsByApiary(ctx context.Context, apiaryID uuid.UUID) ([]*entity.Sensor, error)

	// UpdateGeofenceState persists the geofence columns of a sensor.
	UpdateGeofenceState(ctx context.Context, sensorID uuid.UUID, state entity.GeofenceState) error
}
