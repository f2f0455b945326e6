package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SensorLabelUsecase renders printable sensor labels.
type SensorLabelUsecase interface {
	// Label returns a PNG QR code identifying the sensor.
	Label(ctx context.Context, actor Actor, sensorID uuid.UUID) ([]byte, error)
}
