package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"go.uber.org/fx"
)

type geofenceSweepService struct {
	sensorRepo repository.SensorRepository
	hiveRepo   repository.HiveRepository
	positions  service.PositionProvider
	mailer     service.AlertMailer
	push       usecase.PushDispatcher
	checker    *geofenceChecker
	logger     *slog.Logger
}

// GeofenceSweepServiceParams holds dependencies for the batch sweep.
type GeofenceSweepServiceParams struct {
	fx.In

	Logger     *slog.Logger
	TxManager  repository.TransactionManager
	SensorRepo repository.SensorRepository
	HiveRepo   repository.HiveRepository
	Positions  service.PositionProvider
	Mailer     service.AlertMailer
	Push       usecase.PushDispatcher
}

// NewGeofenceSweepService creates the batch geofence sweep.
func NewGeofenceSweepService(params GeofenceSweepServiceParams) usecase.GeofenceSweepUsecase {
	return &geofenceSweepService{
		sensorRepo: params.SensorRepo,
		hiveRepo:   params.HiveRepo,
		positions:  params.Positions,
		mailer:     params.Mailer,
		push:       params.Push,
		checker: &geofenceChecker{
			txManager: params.TxManager,
			now:       time.Now,
		},
		logger: params.Logger,
	}
}

func (srv *geofenceSweepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sweep checks every armed GPS sensor. Each sensor is independent: provider failures and
// missing fixes are skipped, other failures are counted and the sweep goes on.
func (srv *geofenceSweepService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	sensors, err := srv.sensorRepo.FindArmedGPSSensors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list armed GPS sensors")
	}

	srv.log(ctx).Info("[Sweep] Starting GPS sweep", slog.Int("sensors", len(sensors)))

	report := &usecase.SweepReport{}
	for _, sensor := range sensors {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		logger := srv.log(ctx).With(
			slog.String("sensor_id", sensor.ID.String()),
			slog.String("identifier", sensor.Identifier),
		)

		pos, err := srv.positions.LatestPosition(ctx, sensor.Identifier)
		if err != nil {
			logger.Warn("[Sweep] Position provider failed", slog.Any("error", err))
			report.Skipped++

			continue
		}
		if pos == nil {
			logger.Warn("[Sweep] Position unavailable")
			report.Skipped++

			continue
		}

		hive, err := srv.hiveRepo.FindHiveByID(ctx, sensor.HiveID)
		if err != nil {
			logger.Error("[Sweep] Failed to load hive", slog.Any("error", err))
			report.Failed++

			continue
		}

		outcome, err := srv.checker.run(ctx, checkInput{
			SensorID:     sensor.ID,
			Hive:         hive,
			RequireEmail: true,
		}, pos)
		if err != nil {
			logger.Error("[Sweep] Check failed", slog.Any("error", err))
			report.Failed++

			continue
		}
		report.Checked++

		if !outcome.Breached() {
			logger.Debug("[Sweep] Within threshold",
				slog.Float64("distance_meters", outcome.Distance),
				slog.Float64("threshold_meters", outcome.Threshold),
			)

			continue
		}
		report.Breached++

		logger.Warn("[Sweep] Displacement detected",
			slog.String("alert_id", outcome.Alert.ID.String()),
			slog.Float64("distance_meters", outcome.Distance),
			slog.Float64("threshold_meters", outcome.Threshold),
		)

		if srv.push != nil && outcome.Fanout.Created() > 0 {
			srv.push.Dispatch(ctx, outcome.Fanout.Notifications)
		}
		srv.emailAdmins(ctx, logger, sensor, hive, outcome)
	}

	srv.log(ctx).Info("[Sweep] GPS sweep finished",
		slog.Int("checked", report.Checked),
		slog.Int("skipped", report.Skipped),
		slog.Int("breached", report.Breached),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// emailAdmins sends one email per notified admin. Failures are logged only.
func (srv *geofenceSweepService) emailAdmins(ctx context.Context, logger *slog.Logger, sensor *entity.Sensor, hive *entity.Hive, outcome *checkOutcome) {
	for _, member := range outcome.Fanout.Recipients {
		if member.User == nil || !member.User.HasEmail() {
			continue
		}

		name := member.User.DisplayName()
		if name == "" {
			name = member.User.Email
		}

		err := srv.mailer.SendGPSAlert(ctx, service.GPSAlertEmail{
			To:               member.User.Email,
			RecipientName:    name,
			SensorIdentifier: sensor.Identifier,
			DistanceMeters:   outcome.Distance,
			ThresholdMeters:  outcome.Threshold,
			HiveCode:         hive.RegistrationCode,
		})
		if err != nil {
			logger.Warn("[Sweep] Failed to send alert email",
				slog.String("user_id", member.UserID.String()),
				slog.Any("error", err),
			)
		}
	}
}
