// Package qrcode renders the printable QR labels of sensors.
package qrcode

import (
	"encoding/json"

	"hivewatch/config"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	sensorLabelType = "sensor"
	defaultSize     = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateSensorLabel generates a PNG QR code identifying a sensor
func (s *qrcodeService) GenerateSensorLabel(sensorID uuid.UUID, identifier string) ([]byte, error) {
	if identifier == "" {
		return nil, errors.New("sensor identifier is empty")
	}

	jsonData, err := json.Marshal(service.SensorLabel{
		Type:       sensorLabelType,
		Identifier: identifier,
		SensorID:   sensorID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sensor label")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code PNG")
	}

	return pngBytes, nil
}

// ParseSensorLabel parses QR code data back into a sensor label
func (s *qrcodeService) ParseSensorLabel(qrData string) (*service.SensorLabel, error) {
	var label service.SensorLabel
	if err := json.Unmarshal([]byte(qrData), &label); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if label.Type != sensorLabelType {
		return nil, errors.Errorf("invalid QR code type: %s", label.Type)
	}
	if label.SensorID == uuid.Nil || label.Identifier == "" {
		return nil, errors.New("incomplete sensor label")
	}

	return &label, nil
}
