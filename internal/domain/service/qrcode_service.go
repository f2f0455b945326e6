package service

import (
	"github.com/google/uuid"
)

// SensorLabel is the payload encoded in a sensor's printed QR label.
type SensorLabel struct {
	Type       string    `json:"type"`
	Identifier string    `json:"identifier"`
	SensorID   uuid.UUID `json:"sensor_id"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSensorLabel generates a PNG QR code identifying a sensor
	GenerateSensorLabel(sensorID uuid.UUID, identifier string) ([]byte, error)

	// ParseSensorLabel parses QR code data back into a label
	ParseSensorLabel(qrData string) (*SensorLabel, error)
}
