package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hivewatch/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeRedis struct {
	values  map[string]any
	setErr  error
	evalErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]any)}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value

	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	if f.evalErr != nil {
		return redis.NewCmdResult(nil, f.evalErr)
	}
	if current, ok := f.values[keys[0]]; ok && current == args[0] {
		delete(f.values, keys[0])

		return redis.NewCmdResult(int64(1), nil)
	}

	return redis.NewCmdResult(int64(0), nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisLocker_TryLock(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	locker := newRedisLocker(client, discardLogger())

	release, ok, err := locker.TryLock(ctx, "hivewatch:job:gps_sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, "hivewatch:job:gps_sweep", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	require.NoError(t, release(ctx))
	assert.Empty(t, client.values)

	_, ok, err = locker.TryLock(ctx, "hivewatch:job:gps_sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_ReleaseDoesNotDeleteForeignLease(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	locker := newRedisLocker(client, discardLogger())

	release, ok, err := locker.TryLock(ctx, "key", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// The lease expired and another worker took the key.
	client.values["key"] = "someone-else"

	require.NoError(t, release(ctx))
	assert.Equal(t, "someone-else", client.values["key"])
}

func TestRedisLocker_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire", func(t *testing.T) {
		client := newFakeRedis()
		client.setErr = errors.New("connection refused")
		locker := newRedisLocker(client, discardLogger())

		release, ok, err := locker.TryLock(ctx, "key", time.Minute)
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Nil(t, release)
	})

	t.Run("release", func(t *testing.T) {
		client := newFakeRedis()
		locker := newRedisLocker(client, discardLogger())

		release, ok, err := locker.TryLock(ctx, "key", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		client.evalErr = errors.New("connection reset")
		assert.Error(t, release(ctx))
	})
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	locker := NewLocalLocker()
	locker.clock = func() time.Time { return now }

	release, ok, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = locker.TryLock(ctx, "job", time.Minute)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	releaseAfterExpiry, ok, _ := locker.TryLock(ctx, "job", time.Minute)
	assert.True(t, ok, "expired lease can be taken over")

	// The stale release must not drop the new lease.
	require.NoError(t, release(ctx))
	_, ok, _ = locker.TryLock(ctx, "job", time.Minute)
	assert.False(t, ok)

	require.NoError(t, releaseAfterExpiry(ctx))
	_, ok, _ = locker.TryLock(ctx, "job", time.Minute)
	assert.True(t, ok)
}

func TestNewLocker_WithoutRedisFallsBackToLocal(t *testing.T) {
	locker, err := NewLocker(LockerParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &LocalLocker{}, locker)
}
