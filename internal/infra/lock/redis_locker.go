// Package lock provides distributed job locks backed by Redis.
package lock

import (
	"context"
	"log/slog"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/lifecycle"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// redisClient is the subset of the go-redis client used by the locker.
type redisClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

type redisLocker struct {
	client redisClient
	logger *slog.Logger
}

// LockerParams holds dependencies for the locker, injected by Fx.
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocker creates a Redis-backed locker, or an in-process one when Redis is not configured.
func NewLocker(params LockerParams) (service.Locker, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Warn("Redis not configured, job locks are local to this process")

		return NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Redis connection established", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisLocker(client, params.Logger), nil
}

func newRedisLocker(client redisClient, logger *slog.Logger) *redisLocker {
	return &redisLocker{
		client: client,
		logger: logger,
	}
}

// TryLock sets key with a random token if it does not exist yet.
func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		deleted, err := l.client.Eval(ctx, releaseScript, []string{key}, token).Int64()
		if err != nil {
			return errors.Wrapf(err, "failed to release lock %s", key)
		}
		if deleted == 0 {
			l.logger.Warn("Lock expired before release", slog.String("key", key))
		}

		return nil
	}

	return release, true, nil
}
