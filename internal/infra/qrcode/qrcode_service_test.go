package qrcode

import (
	"encoding/json"
	"testing"

	"hivewatch/config"
	"hivewatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)

			png, err := svc.GenerateSensorLabel(uuid.New(), "GPS-001")
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 512, svc.(*qrcodeService).size)
}

func TestQRCodeService_GenerateSensorLabel_EmptyIdentifier(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateSensorLabel(uuid.New(), "")
	assert.Error(t, err)
}

func TestQRCodeService_ParseSensorLabel(t *testing.T) {
	sensorID := uuid.New()
	valid, err := json.Marshal(service.SensorLabel{Type: "sensor", Identifier: "GPS-001", SensorID: sensorID})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid", data: string(valid)},
		{name: "invalid json", data: "invalid json", wantErr: "failed to unmarshal QR code data"},
		{name: "wrong type", data: `{"type":"subscription","identifier":"x","sensor_id":"` + sensorID.String() + `"}`, wantErr: "invalid QR code type"},
		{name: "invalid uuid", data: `{"type":"sensor","identifier":"x","sensor_id":"not-a-uuid"}`, wantErr: "failed to unmarshal QR code data"},
		{name: "missing identifier", data: `{"type":"sensor","sensor_id":"` + sensorID.String() + `"}`, wantErr: "incomplete sensor label"},
	}

	svc := NewQRCodeService(256, "M")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := svc.ParseSensorLabel(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, sensorID, label.SensorID)
			assert.Equal(t, "GPS-001", label.Identifier)
		})
	}
}
