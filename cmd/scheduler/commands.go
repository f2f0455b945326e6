package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"hivewatch/config"
	"hivewatch/internal/domain/lifecycle"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/infra/email"
	"hivewatch/internal/infra/lock"
	logs "hivewatch/internal/infra/log"
	"hivewatch/internal/infra/notification"
	"hivewatch/internal/infra/persistence/postgres"
	"hivewatch/internal/infra/pubsub"
	"hivewatch/internal/infra/traccar"
	"hivewatch/internal/usecase"
	"hivewatch/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publish sends one job event through the configured Pub/Sub provider.
func publish(ctx context.Context, job, date string) error {
	var (
		cfg       *config.Config
		logger    *slog.Logger
		publisher service.EventPublisher
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			pubsub.NewEventPublisher,
		),
		fx.Populate(&cfg, &logger, &publisher),
	)

	return withApp(ctx, app, func() error {
		event, err := newJobEvent(job, date, cfg.Scheduler.Location())
		if err != nil {
			return err
		}

		if err := publisher.PublishJobEvent(ctx, event); err != nil {
			return errors.Wrap(err, "publish job event")
		}

		logger.Info("[Scheduler] Job event published",
			slog.String("job", event.Job),
			slog.String("request_id", event.RequestID),
		)

		return nil
	})
}

// run executes one job in-process and prints its report.
func run(ctx context.Context, job, date string) error {
	var (
		cfg   *config.Config
		jobUC usecase.JobUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewSensorRepository,
			postgres.NewHiveRepository,
			postgres.NewInterventionRepository,
			postgres.NewMembershipRepository,
			postgres.NewDeviceRepository,
			email.NewMailer,
			email.NewAlertMailer,
			traccar.NewPositionProvider,
			notification.NewNotificationService,
			lock.NewLocker,
			impl.NewPushDispatcher,
			impl.NewFanoutService,
			impl.NewGeofenceSweepService,
			impl.NewRuleEngineService,
			impl.NewJobService,
		),
		fx.Populate(&cfg, &jobUC),
	)

	return withApp(ctx, app, func() error {
		event, err := newJobEvent(job, date, cfg.Scheduler.Location())
		if err != nil {
			return err
		}

		result, err := jobUC.RunJob(ctx, *event)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Println(string(out))

		return nil
	})
}

// withApp starts the fx app, runs fn and stops the app.
func withApp(ctx context.Context, app *fx.App, fn func() error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := fn()

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return runErr
}
