package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/lifecycle"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// ownedModels are the tables hivewatch creates. Hives, sensors, memberships and
// interventions belong to the data-API schema and are never migrated here.
var ownedModels = []any{
	&model.NotificationDispatchModel{},
	&model.UserDeviceModel{},
}

// New opens the gorm client over the primary and its read replicas.
// The connection is verified and owned tables migrated when the app starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through the transaction manager; single statements need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.Env.AutoMigrate {
				if err := migrateOwned(ctx, db, params.Logger); err != nil {
					return err
				}
			}
			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func migrateOwned(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(ownedModels...); err != nil {
		return errors.Wrap(err, "failed to migrate owned tables")
	}
	logger.Info("[Postgres] Owned tables migrated", slog.Int("count", len(ownedModels)))

	return nil
}

// watchPool reports connection waits. A sweep or a large fan-out can exhaust the pool
// while webhook requests queue behind it.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := sqlDB.Stats()
		waits := stats.WaitCount - last.WaitCount
		waited := stats.WaitDuration - last.WaitDuration
		last = stats
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "[Postgres] Connection pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", stats.InUse),
			slog.Int("idle", stats.Idle),
			slog.Int("maxOpen", stats.MaxOpenConnections),
		)
	}
}
