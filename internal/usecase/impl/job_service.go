package impl

import (
	"context"
	"log/slog"
	"time"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"
	"hivewatch/internal/util"

	"go.uber.org/fx"
)

const jobLockPrefix = "hivewatch:job:"

type jobService struct {
	ruleEngine usecase.RuleEngineUsecase
	sweep      usecase.GeofenceSweepUsecase
	locker     service.Locker
	lockTTL    time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// JobServiceParams holds dependencies for the job runner.
type JobServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	RuleEngine usecase.RuleEngineUsecase
	Sweep      usecase.GeofenceSweepUsecase
	Locker     service.Locker
}

// NewJobService creates the scheduled job runner.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	lockTTL := 30 * time.Minute
	if params.Config.Scheduler != nil && params.Config.Scheduler.LockTTL > 0 {
		lockTTL = params.Config.Scheduler.LockTTL
	}

	return &jobService{
		ruleEngine: params.RuleEngine,
		sweep:      params.Sweep,
		locker:     params.Locker,
		lockTTL:    lockTTL,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// RunJob runs one job under its distributed lock.
func (srv *jobService) RunJob(ctx context.Context, event service.JobEvent) (*usecase.JobResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("job", event.Job))

	var run func(context.Context) (*usecase.JobResult, error)
	switch event.Job {
	case service.JobDailyNotifications:
		today := srv.now()
		if event.RunDate != nil {
			today = *event.RunDate
		}
		run = func(ctx context.Context) (*usecase.JobResult, error) {
			report, err := srv.ruleEngine.RunDaily(ctx, today)

			return &usecase.JobResult{Job: event.Job, Daily: report}, err
		}
	case service.JobGPSSweep:
		run = func(ctx context.Context) (*usecase.JobResult, error) {
			report, err := srv.sweep.Sweep(ctx)

			return &usecase.JobResult{Job: event.Job, Sweep: report}, err
		}
	default:
		return nil, errors.Wrapf(usecase.ErrUnknownJob, "job %q", event.Job)
	}

	release, ok, err := srv.locker.TryLock(ctx, jobLockPrefix+event.Job, srv.lockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire job lock")
	}
	if !ok {
		logger.Info("[Job] Already running elsewhere, skipping")

		return nil, errors.WithStack(usecase.ErrJobAlreadyRunning)
	}
	defer func() {
		// The job context may be cancelled already; release on a fresh one.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			logger.Warn("[Job] Failed to release lock", slog.Any("error", err))
		}
	}()

	start := time.Now()
	logger.Info("[Job] Started")

	result, err := run(ctx)
	if err != nil {
		return result, errors.Wrapf(err, "job %s failed", event.Job)
	}

	logger.Info("[Job] Finished", slog.String("duration", util.FormatDuration(time.Since(start))))

	return result, nil
}
