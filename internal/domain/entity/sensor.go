package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// SensorKind is the measurement family of a sensor.
type SensorKind string

const (
	SensorKindWeight      SensorKind = "Poids"
	SensorKindTemperature SensorKind = "Temperature"
	SensorKindHumidity    SensorKind = "Humidite"
	SensorKindGPS         SensorKind = "GPS"
	SensorKindCO2         SensorKind = "CO2"
	SensorKindSound       SensorKind = "Son"
	SensorKindBattery     SensorKind = "Batterie"
)

// String returns the stored tag of the SensorKind.
func (k SensorKind) String() string {
	return string(k)
}

// IsValid checks if the SensorKind is a known value.
func (k SensorKind) IsValid() bool {
	switch k {
	case SensorKindWeight, SensorKindTemperature, SensorKindHumidity, SensorKindGPS,
		SensorKindCO2, SensorKindSound, SensorKindBattery:
		return true
	default:
		return false
	}
}

// ParseSensorKind converts a stored tag into a SensorKind.
func ParseSensorKind(s string) (SensorKind, error) {
	return parseEnum[SensorKind](s, "sensor kind")
}

// DefaultGeofenceThresholdMeters is used when a sensor has no stored threshold.
const DefaultGeofenceThresholdMeters = 100.0

// GeofenceState is the GPS displacement monitoring state of a sensor.
type GeofenceState struct {
	Armed              bool       `json:"armed"`
	ReferenceLatitude  *float64   `json:"reference_latitude"`
	ReferenceLongitude *float64   `json:"reference_longitude"`
	ThresholdMeters    float64    `json:"threshold_meters"`
	LastCheckedAt      *time.Time `json:"last_checked_at"`
	LastAlertAt        *time.Time `json:"last_alert_at"`
}

// HasReference reports whether both reference coordinates are set.
func (g GeofenceState) HasReference() bool {
	return g.ReferenceLatitude != nil && g.ReferenceLongitude != nil
}

// Reference returns the reference point as an orb.Point {lng, lat}.
func (g GeofenceState) Reference() (orb.Point, bool) {
	if !g.HasReference() {
		return orb.Point{}, false
	}

	return orb.Point{*g.ReferenceLongitude, *g.ReferenceLatitude}, true
}

// Sensor is a device attached to a hive.
type Sensor struct {
	ID                  uuid.UUID     `json:"id"`
	Kind                SensorKind    `json:"kind"`
	Identifier          string        `json:"identifier"` // External device identifier, unique.
	Active              bool          `json:"active"`
	BatteryPct          *float64      `json:"battery_pct"`
	LastCommunicationAt *time.Time    `json:"last_communication_at"`
	HiveID              uuid.UUID     `json:"hive_id"`
	Geofence            GeofenceState `json:"geofence"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// IsGPS reports whether the sensor reports positions.
func (s *Sensor) IsGPS() bool {
	return s.Kind == SensorKindGPS
}
