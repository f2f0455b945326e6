package main

import (
	"context"
	"log/slog"
	"os"

	"hivewatch/config"
	"hivewatch/internal/delivery"
	"hivewatch/internal/delivery/worker"
	"hivewatch/internal/delivery/worker/handler"
	"hivewatch/internal/infra/email"
	"hivewatch/internal/infra/lock"
	logs "hivewatch/internal/infra/log"
	"hivewatch/internal/infra/notification"
	"hivewatch/internal/infra/persistence/postgres"
	"hivewatch/internal/infra/traccar"
	"hivewatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewSensorRepository,
			postgres.NewHiveRepository,
			postgres.NewInterventionRepository,
			postgres.NewMembershipRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			email.NewMailer,
			email.NewAlertMailer,
			traccar.NewPositionProvider,
			notification.NewNotificationService,
			lock.NewLocker,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPushDispatcher,
			impl.NewFanoutService,
			impl.NewGeofenceSweepService,
			impl.NewRuleEngineService,
			impl.NewJobService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
