package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind classifies a sensor alert.
type AlertKind string

const (
	AlertKindTheft               AlertKind = "Vol"
	AlertKindWeightDrop          AlertKind = "ChutePoids"
	AlertKindCriticalTemperature AlertKind = "TemperatureCritique"
	AlertKindLowBattery          AlertKind = "BatterieFaible"
	AlertKindGPSDisplacement     AlertKind = "DeplacementGPS"
	AlertKindOffline             AlertKind = "HorsLigne"
)

// String returns the stored tag of the AlertKind.
func (k AlertKind) String() string {
	return string(k)
}

// IsValid checks if the AlertKind is a known value.
func (k AlertKind) IsValid() bool {
	switch k {
	case AlertKindTheft, AlertKindWeightDrop, AlertKindCriticalTemperature,
		AlertKindLowBattery, AlertKindGPSDisplacement, AlertKindOffline:
		return true
	default:
		return false
	}
}

// ParseAlertKind converts a stored tag into an AlertKind.
func ParseAlertKind(s string) (AlertKind, error) {
	return parseEnum[AlertKind](s, "alert kind")
}

// Alert is raised against a sensor and stays until acknowledged or cleared.
type Alert struct {
	ID           uuid.UUID `json:"id"`
	Kind         AlertKind `json:"kind"`
	Message      string    `json:"message"`
	Acknowledged bool      `json:"acknowledged"`
	SensorID     uuid.UUID `json:"sensor_id"`
	CreatedAt    time.Time `json:"created_at"`
}
