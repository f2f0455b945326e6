package usecase

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Geofence response statuses.
const (
	GeofenceStatusActivated   = "activated"
	GeofenceStatusDeactivated = "deactivated"
	GeofenceStatusOK          = "ok"
	GeofenceStatusAlertSent   = "alert_sent"
)

// Actor is the authenticated caller of an interactive operation.
type Actor struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID // Current company from the token, nil when the claim is absent.
}

// GeofenceView is the serialized geofence state of a sensor.
type GeofenceView struct {
	Armed              bool       `json:"armed"`
	ReferenceLatitude  *float64   `json:"referenceLatitude"`
	ReferenceLongitude *float64   `json:"referenceLongitude"`
	ThresholdMeters    float64    `json:"thresholdMeters"`
	LastCheckedAt      *time.Time `json:"lastCheckedAt"`
	LastAlertAt        *time.Time `json:"lastAlertAt"`
}

// NewGeofenceView converts the geofence state of a sensor.
func NewGeofenceView(state entity.GeofenceState) GeofenceView {
	return GeofenceView{
		Armed:              state.Armed,
		ReferenceLatitude:  state.ReferenceLatitude,
		ReferenceLongitude: state.ReferenceLongitude,
		ThresholdMeters:    state.ThresholdMeters,
		LastCheckedAt:      state.LastCheckedAt,
		LastAlertAt:        state.LastAlertAt,
	}
}

// PositionView is a GPS fix.
type PositionView struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	FixTime   *time.Time `json:"fixTime,omitempty"`
}

// ActivationResult is returned by Activate and Deactivate.
type ActivationResult struct {
	Status   string        `json:"status"`
	SensorID uuid.UUID     `json:"sensorId"`
	Geofence GeofenceView  `json:"geofence"`
	Position *PositionView `json:"position,omitempty"`
}

// EmailOutcome reports the delivery of the breach email.
type EmailOutcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CheckResult is returned by Check.
type CheckResult struct {
	Status               string        `json:"status"`
	SensorID             uuid.UUID     `json:"sensorId"`
	DistanceMeters       float64       `json:"distanceMeters"`
	ThresholdMeters      float64       `json:"thresholdMeters"`
	Position             PositionView  `json:"position"`
	AlertID              *uuid.UUID    `json:"alertId,omitempty"`
	NotificationsCreated int           `json:"notificationsCreated"`
	Email                *EmailOutcome `json:"email,omitempty"`
}

// AlertView is a serialized alert.
type AlertView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// AlertStatus is returned by Status.
type AlertStatus struct {
	SensorID            uuid.UUID    `json:"sensorId"`
	Geofence            GeofenceView `json:"geofence"`
	UnacknowledgedCount int64        `json:"unacknowledgedCount"`
	Alerts              []AlertView  `json:"alerts"`
}

// ClearResult is returned by Clear.
type ClearResult struct {
	SensorID uuid.UUID `json:"sensorId"`
	Cleared  int64     `json:"cleared"`
}

// SensorSummary describes one GPS sensor of an apiary.
type SensorSummary struct {
	SensorID   uuid.UUID    `json:"sensorId"`
	Identifier string       `json:"identifier"`
	HiveID     uuid.UUID    `json:"hiveId"`
	Geofence   GeofenceView `json:"geofence"`
}

// ApiaryGeofenceStatus is returned by ApiaryStatus.
type ApiaryGeofenceStatus struct {
	ApiaryID uuid.UUID       `json:"apiaryId"`
	AnyArmed bool            `json:"anyArmed"`
	Sensors  []SensorSummary `json:"sensors"`
	// References holds one point feature per armed sensor reference.
	References *geojson.FeatureCollection `json:"references"`
}

// GeofenceUsecase defines the interactive GPS geofence operations.
// Every call checks that the sensor belongs to the actor's company.
type GeofenceUsecase interface {
	// Activate records the current position as reference and arms the geofence.
	Activate(ctx context.Context, actor Actor, sensorID uuid.UUID, thresholdMeters *float64) (*ActivationResult, error)

	// Check compares the current position with the reference and raises an alert on breach.
	Check(ctx context.Context, actor Actor, sensorID uuid.UUID, thresholdMeters *float64) (*CheckResult, error)

	// Deactivate disarms the geofence and keeps the reference.
	Deactivate(ctx context.Context, actor Actor, sensorID uuid.UUID) (*ActivationResult, error)

	// Status returns the unacknowledged displacement alerts of a sensor.
	Status(ctx context.Context, actor Actor, sensorID uuid.UUID) (*AlertStatus, error)

	// Clear deletes the unacknowledged displacement alerts of a sensor.
	Clear(ctx context.Context, actor Actor, sensorID uuid.UUID) (*ClearResult, error)

	// ApiaryStatus summarizes the GPS sensors of an apiary.
	ApiaryStatus(ctx context.Context, actor Actor, apiaryID uuid.UUID) (*ApiaryGeofenceStatus, error)
}

// SweepReport summarizes one batch sweep.
type SweepReport struct {
	Checked  int `json:"checked"`
	Skipped  int `json:"skipped"`
	Breached int `json:"breached"`
	Failed   int `json:"failed"`
}

// GeofenceSweepUsecase checks every armed GPS sensor.
type GeofenceSweepUsecase interface {
	Sweep(ctx context.Context) (*SweepReport, error)
}
