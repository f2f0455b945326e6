package impl

import (
	"context"
	"log/slog"
	"time"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

type geofenceService struct {
	*sensorAuthorizer

	alertRepo repository.AlertRepository
	txManager repository.TransactionManager
	positions service.PositionProvider
	mailer    service.AlertMailer
	push      usecase.PushDispatcher
	checker   *geofenceChecker

	defaultThreshold float64
	alertsLimit      int
	logger           *slog.Logger
	now              func() time.Time
}

// GeofenceServiceParams holds dependencies for the geofence service.
type GeofenceServiceParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	TxManager      repository.TransactionManager
	SensorRepo     repository.SensorRepository
	HiveRepo       repository.HiveRepository
	MembershipRepo repository.MembershipRepository
	AlertRepo      repository.AlertRepository
	Positions      service.PositionProvider
	Mailer         service.AlertMailer
	Push           usecase.PushDispatcher
}

// NewGeofenceService creates the interactive GPS geofence use case.
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	srv := &geofenceService{
		sensorAuthorizer: &sensorAuthorizer{
			sensorRepo:     params.SensorRepo,
			hiveRepo:       params.HiveRepo,
			membershipRepo: params.MembershipRepo,
		},
		alertRepo:        params.AlertRepo,
		txManager:        params.TxManager,
		positions:        params.Positions,
		mailer:           params.Mailer,
		push:             params.Push,
		defaultThreshold: entity.DefaultGeofenceThresholdMeters,
		alertsLimit:      20,
		logger:           params.Logger,
		now:              time.Now,
	}
	if params.Config.Geofence != nil {
		if params.Config.Geofence.DefaultThresholdMeters > 0 {
			srv.defaultThreshold = params.Config.Geofence.DefaultThresholdMeters
		}
		if params.Config.Geofence.RecentAlertsLimit > 0 {
			srv.alertsLimit = params.Config.Geofence.RecentAlertsLimit
		}
	}
	srv.checker = &geofenceChecker{
		txManager: params.TxManager,
		now:       func() time.Time { return srv.now() },
	}

	return srv
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// currentPosition fetches the latest fix of a sensor from the position provider.
func (srv *geofenceService) currentPosition(ctx context.Context, sensor *entity.Sensor) (*entity.Position, error) {
	pos, err := srv.positions.LatestPosition(ctx, sensor.Identifier)
	if err != nil {
		return nil, mapProviderError(err)
	}
	if pos == nil {
		return nil, errors.WithStack(domainerrors.ErrPositionUnavailable)
	}

	return pos, nil
}

// Activate records the current position as reference and arms the geofence. Repeated calls move the reference.
func (srv *geofenceService) Activate(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID, thresholdMeters *float64) (*usecase.ActivationResult, error) {
	target, err := srv.authorizeSensor(ctx, actor, sensorID)
	if err != nil {
		return nil, err
	}
	if !target.sensor.IsGPS() {
		return nil, errors.WithStack(domainerrors.ErrSensorNotGPS)
	}
	if err := validateThreshold(thresholdMeters); err != nil {
		return nil, err
	}

	pos, err := srv.currentPosition(ctx, target.sensor)
	if err != nil {
		return nil, err
	}

	var state entity.GeofenceState
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		sensorRepo := repos.NewSensorRepository()

		locked, err := sensorRepo.FindSensorByIDForUpdate(ctx, sensorID)
		if err != nil {
			return mapRepositoryError(err)
		}

		now := srv.now()
		lat, lng := pos.Latitude, pos.Longitude
		state = locked.Geofence
		state.Armed = true
		state.ReferenceLatitude = &lat
		state.ReferenceLongitude = &lng
		state.LastCheckedAt = &now
		if thresholdMeters != nil {
			state.ThresholdMeters = *thresholdMeters
		} else if state.ThresholdMeters <= 0 {
			state.ThresholdMeters = srv.defaultThreshold
		}

		return mapRepositoryError(sensorRepo.UpdateGeofenceState(ctx, sensorID, state))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("[Geofence] Alert activated",
		slog.String("sensor_id", sensorID.String()),
		slog.Float64("threshold_meters", state.ThresholdMeters),
	)

	return &usecase.ActivationResult{
		Status:   usecase.GeofenceStatusActivated,
		SensorID: sensorID,
		Geofence: usecase.NewGeofenceView(state),
		Position: &usecase.PositionView{Latitude: pos.Latitude, Longitude: pos.Longitude, FixTime: pos.FixTime},
	}, nil
}

// Check measures the displacement from the reference and raises an alert on breach.
// The summary email goes to the caller after commit and never rolls the check back.
func (srv *geofenceService) Check(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID, thresholdMeters *float64) (*usecase.CheckResult, error) {
	target, err := srv.authorizeSensor(ctx, actor, sensorID)
	if err != nil {
		return nil, err
	}
	if !target.sensor.IsGPS() {
		return nil, errors.WithStack(domainerrors.ErrSensorNotGPS)
	}
	if err := validateThreshold(thresholdMeters); err != nil {
		return nil, err
	}
	if !target.sensor.Geofence.Armed {
		return nil, errors.WithStack(domainerrors.ErrGPSAlertNotActive)
	}
	if !target.sensor.Geofence.HasReference() {
		return nil, errors.WithStack(domainerrors.ErrGPSReferenceMissing)
	}

	pos, err := srv.currentPosition(ctx, target.sensor)
	if err != nil {
		return nil, err
	}

	outcome, err := srv.checker.run(ctx, checkInput{
		SensorID:          sensorID,
		Hive:              target.hive,
		ThresholdOverride: thresholdMeters,
	}, pos)
	if err != nil {
		return nil, err
	}

	result := &usecase.CheckResult{
		Status:          usecase.GeofenceStatusOK,
		SensorID:        sensorID,
		DistanceMeters:  outcome.Distance,
		ThresholdMeters: outcome.Threshold,
		Position:        usecase.PositionView{Latitude: pos.Latitude, Longitude: pos.Longitude, FixTime: pos.FixTime},
	}
	if !outcome.Breached() {
		return result, nil
	}

	alertID := outcome.Alert.ID
	result.Status = usecase.GeofenceStatusAlertSent
	result.AlertID = &alertID
	result.NotificationsCreated = outcome.Fanout.Created()

	srv.log(ctx).Warn("[Geofence] Displacement detected",
		slog.String("sensor_id", sensorID.String()),
		slog.Float64("distance_meters", outcome.Distance),
		slog.Float64("threshold_meters", outcome.Threshold),
		slog.Int("notifications", result.NotificationsCreated),
	)

	if srv.push != nil && result.NotificationsCreated > 0 {
		srv.push.Dispatch(ctx, outcome.Fanout.Notifications)
	}

	result.Email = srv.emailCaller(ctx, target, outcome)

	return result, nil
}

// emailCaller sends the breach summary to the user who ran the check.
func (srv *geofenceService) emailCaller(ctx context.Context, target *authorizedSensor, outcome *checkOutcome) *usecase.EmailOutcome {
	user := target.membership.User
	if user == nil || !user.HasEmail() {
		return &usecase.EmailOutcome{Success: false, Error: "recipient has no email address"}
	}

	err := srv.mailer.SendGPSAlert(ctx, service.GPSAlertEmail{
		To:               user.Email,
		RecipientName:    user.DisplayName(),
		SensorIdentifier: target.sensor.Identifier,
		DistanceMeters:   outcome.Distance,
		ThresholdMeters:  outcome.Threshold,
		HiveCode:         target.hive.RegistrationCode,
	})
	if err != nil {
		srv.log(ctx).Warn("[Geofence] Failed to send alert email", slog.Any("error", err))

		return &usecase.EmailOutcome{Success: false, Error: err.Error()}
	}

	return &usecase.EmailOutcome{Success: true}
}

// Deactivate disarms the geofence. The reference and threshold are kept for a later activation.
func (srv *geofenceService) Deactivate(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID) (*usecase.ActivationResult, error) {
	target, err := srv.authorizeSensor(ctx, actor, sensorID)
	if err != nil {
		return nil, err
	}
	if !target.sensor.IsGPS() {
		return nil, errors.WithStack(domainerrors.ErrSensorNotGPS)
	}

	var state entity.GeofenceState
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		sensorRepo := repos.NewSensorRepository()

		locked, err := sensorRepo.FindSensorByIDForUpdate(ctx, sensorID)
		if err != nil {
			return mapRepositoryError(err)
		}

		state = locked.Geofence
		state.Armed = false

		return mapRepositoryError(sensorRepo.UpdateGeofenceState(ctx, sensorID, state))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("[Geofence] Alert deactivated", slog.String("sensor_id", sensorID.String()))

	return &usecase.ActivationResult{
		Status:   usecase.GeofenceStatusDeactivated,
		SensorID: sensorID,
		Geofence: usecase.NewGeofenceView(state),
	}, nil
}

// Status returns the unacknowledged displacement alerts, newest first.
func (srv *geofenceService) Status(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID) (*usecase.AlertStatus, error) {
	target, err := srv.authorizeSensor(ctx, actor, sensorID)
	if err != nil {
		return nil, err
	}

	count, err := srv.alertRepo.CountUnacknowledgedAlerts(ctx, sensorID, entity.AlertKindGPSDisplacement)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	alerts, err := srv.alertRepo.FindUnacknowledgedAlerts(ctx, sensorID, entity.AlertKindGPSDisplacement, srv.alertsLimit)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	views := make([]usecase.AlertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, usecase.AlertView{
			ID:        alert.ID,
			Kind:      alert.Kind.String(),
			Message:   alert.Message,
			CreatedAt: alert.CreatedAt,
		})
	}

	return &usecase.AlertStatus{
		SensorID:            sensorID,
		Geofence:            usecase.NewGeofenceView(target.sensor.Geofence),
		UnacknowledgedCount: count,
		Alerts:              views,
	}, nil
}

// Clear deletes the unacknowledged displacement alerts of a sensor.
func (srv *geofenceService) Clear(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID) (*usecase.ClearResult, error) {
	if _, err := srv.authorizeSensor(ctx, actor, sensorID); err != nil {
		return nil, err
	}

	cleared, err := srv.alertRepo.DeleteUnacknowledgedAlerts(ctx, sensorID, entity.AlertKindGPSDisplacement)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("[Geofence] Alerts cleared",
		slog.String("sensor_id", sensorID.String()),
		slog.Int64("cleared", cleared),
	)

	return &usecase.ClearResult{SensorID: sensorID, Cleared: cleared}, nil
}

// ApiaryStatus summarizes the GPS sensors of an apiary and exposes armed references as GeoJSON points.
func (srv *geofenceService) ApiaryStatus(ctx context.Context, actor usecase.Actor, apiaryID uuid.UUID) (*usecase.ApiaryGeofenceStatus, error) {
	if actor.CompanyID == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingCompanyContext)
	}

	apiary, err := srv.hiveRepo.FindApiaryByID(ctx, apiaryID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if apiary.CompanyID == nil || *apiary.CompanyID != *actor.CompanyID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "apiary does not belong to the current company")
	}
	if _, err := srv.membershipRepo.FindMembership(ctx, actor.UserID, *actor.CompanyID); err != nil {
		return nil, mapRepositoryError(err)
	}

	sensors, err := srv.sensorRepo.FindGPSSensorsByApiary(ctx, apiaryID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	status := &usecase.ApiaryGeofenceStatus{
		ApiaryID:   apiaryID,
		Sensors:    make([]usecase.SensorSummary, 0, len(sensors)),
		References: geojson.NewFeatureCollection(),
	}
	for _, sensor := range sensors {
		status.Sensors = append(status.Sensors, usecase.SensorSummary{
			SensorID:   sensor.ID,
			Identifier: sensor.Identifier,
			HiveID:     sensor.HiveID,
			Geofence:   usecase.NewGeofenceView(sensor.Geofence),
		})

		if !sensor.Geofence.Armed {
			continue
		}
		status.AnyArmed = true

		if point, ok := sensor.Geofence.Reference(); ok {
			feature := geojson.NewFeature(point)
			feature.Properties["sensorId"] = sensor.ID.String()
			feature.Properties["identifier"] = sensor.Identifier
			feature.Properties["hiveId"] = sensor.HiveID.String()
			feature.Properties["thresholdMeters"] = sensor.Geofence.ThresholdMeters
			status.References.Append(feature)
		}
	}

	return status, nil
}
