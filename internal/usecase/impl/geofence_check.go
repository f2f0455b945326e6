package impl

import (
	"context"
	"fmt"
	"time"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/geo"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
)

const geofenceAlertTitle = "Alerte deplacement GPS"

// checkOutcome is the result of one transactional geofence check.
type checkOutcome struct {
	State     entity.GeofenceState
	Distance  float64
	Threshold float64
	Alert     *entity.Alert
	Fanout    *usecase.FanoutResult
}

// Breached reports whether the check raised an alert.
func (o *checkOutcome) Breached() bool {
	return o.Alert != nil
}

// geofenceChecker runs the transactional part of a check, shared by interactive and batch callers.
type geofenceChecker struct {
	txManager repository.TransactionManager
	now       func() time.Time
}

// checkInput carries what a check needs besides the position.
type checkInput struct {
	SensorID          uuid.UUID
	Hive              *entity.Hive
	ThresholdOverride *float64
	// RequireEmail restricts the admin fan-out to admins with an email address.
	RequireEmail bool
}

// run re-reads the sensor under a row lock, measures the displacement and on breach
// creates the alert and the admin notifications. LastCheckedAt is always written.
// The reference point is left unchanged after a breach.
func (c *geofenceChecker) run(ctx context.Context, in checkInput, pos *entity.Position) (*checkOutcome, error) {
	var outcome *checkOutcome

	err := c.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		sensorRepo := repos.NewSensorRepository()

		sensor, err := sensorRepo.FindSensorByIDForUpdate(ctx, in.SensorID)
		if err != nil {
			return mapRepositoryError(err)
		}

		state := sensor.Geofence
		if !state.Armed {
			return errors.WithStack(domainerrors.ErrGPSAlertNotActive)
		}
		reference, ok := state.Reference()
		if !ok {
			return errors.WithStack(domainerrors.ErrGPSReferenceMissing)
		}

		if in.ThresholdOverride != nil {
			state.ThresholdMeters = *in.ThresholdOverride
		}
		if state.ThresholdMeters <= 0 {
			state.ThresholdMeters = entity.DefaultGeofenceThresholdMeters
		}

		now := c.now()
		state.LastCheckedAt = &now

		outcome = &checkOutcome{
			Distance:  geo.Distance(reference, pos.Point()),
			Threshold: state.ThresholdMeters,
		}

		if outcome.Distance > outcome.Threshold {
			alert := &entity.Alert{
				Kind:     entity.AlertKindGPSDisplacement,
				Message:  displacementMessage(sensor.Identifier, outcome.Distance, outcome.Threshold),
				SensorID: sensor.ID,
			}
			if err := repos.NewAlertRepository().CreateAlert(ctx, alert); err != nil {
				return errors.Wrap(err, "failed to create displacement alert")
			}
			outcome.Alert = alert

			outcome.Fanout = &usecase.FanoutResult{}
			if in.Hive != nil && in.Hive.CompanyID != nil {
				hiveID := in.Hive.ID
				outcome.Fanout, err = fanoutToMembers(ctx, repos.NewMembershipRepository(), repos.NewNotificationRepository(), usecase.FanoutRequest{
					CompanyID:    *in.Hive.CompanyID,
					Kind:         entity.NotificationKindGPSAlert,
					Title:        geofenceAlertTitle,
					Message:      alert.Message,
					Date:         now,
					HiveID:       &hiveID,
					Roles:        entity.Roles{entity.RoleAdmin},
					RequireEmail: in.RequireEmail,
				})
				if err != nil {
					return err
				}
			}

			state.LastAlertAt = &now
		}

		if err := sensorRepo.UpdateGeofenceState(ctx, sensor.ID, state); err != nil {
			return mapRepositoryError(err)
		}
		outcome.State = state

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return outcome, nil
}

func displacementMessage(identifier string, distance, threshold float64) string {
	return fmt.Sprintf("Deplacement GPS detecte pour le capteur %s. Distance: %.1fm (seuil %.1fm).", identifier, distance, threshold)
}
