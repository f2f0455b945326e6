package impl

import (
	"context"
	"testing"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	mockSvc "hivewatch/internal/mocks/service"
	mockUsecase "hivewatch/internal/mocks/usecase"
	"hivewatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	service    *jobService
	ruleEngine *mockUsecase.MockRuleEngineUsecase
	sweep      *mockUsecase.MockGeofenceSweepUsecase
	locker     *mockSvc.MockLocker
	now        time.Time
}

func createTestJobService(t *testing.T) *jobFixture {
	f := &jobFixture{
		ruleEngine: mockUsecase.NewMockRuleEngineUsecase(t),
		sweep:      mockUsecase.NewMockGeofenceSweepUsecase(t),
		locker:     mockSvc.NewMockLocker(t),
		now:        time.Date(2026, 6, 1, 4, 0, 0, 0, time.UTC),
	}
	f.service = NewJobService(JobServiceParams{
		Config:     &config.Config{Scheduler: &config.SchedulerConfig{LockTTL: 10 * time.Minute}},
		Logger:     newDiscardLogger(),
		RuleEngine: f.ruleEngine,
		Sweep:      f.sweep,
		Locker:     f.locker,
	}).(*jobService)
	f.service.now = func() time.Time { return f.now }

	return f
}

// expectLock grants the lock and records its release.
func (f *jobFixture) expectLock(key string, released *bool) {
	f.locker.EXPECT().TryLock(mock.Anything, key, 10*time.Minute).
		Return(func(context.Context) error {
			*released = true

			return nil
		}, true, nil)
}

func TestJobService_RunJob_Daily(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()
	var released bool

	f.expectLock("hivewatch:job:daily_notifications", &released)
	f.ruleEngine.EXPECT().RunDaily(ctx, f.now).Return(&usecase.DailyRunReport{Date: "2026-06-01", Seasonal: 3, Created: 3}, nil)

	result, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobDailyNotifications})

	require.NoError(t, err)
	assert.Equal(t, service.JobDailyNotifications, result.Job)
	require.NotNil(t, result.Daily)
	assert.Equal(t, 3, result.Daily.Created)
	assert.Nil(t, result.Sweep)
	assert.True(t, released)
}

func TestJobService_RunJob_DailyWithRunDate(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()
	var released bool
	runDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	f.expectLock("hivewatch:job:daily_notifications", &released)
	f.ruleEngine.EXPECT().RunDaily(ctx, runDate).Return(&usecase.DailyRunReport{Date: "2026-03-01"}, nil)

	_, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobDailyNotifications, RunDate: &runDate})

	require.NoError(t, err)
}

func TestJobService_RunJob_Sweep(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()
	var released bool

	f.expectLock("hivewatch:job:gps_sweep", &released)
	f.sweep.EXPECT().Sweep(ctx).Return(&usecase.SweepReport{Checked: 4, Breached: 1}, nil)

	result, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobGPSSweep})

	require.NoError(t, err)
	require.NotNil(t, result.Sweep)
	assert.Equal(t, 4, result.Sweep.Checked)
	assert.True(t, released)
}

func TestJobService_RunJob_ReleasesLockOnFailure(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()
	var released bool

	f.expectLock("hivewatch:job:gps_sweep", &released)
	f.sweep.EXPECT().Sweep(ctx).Return(nil, errors.New("db down"))

	_, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobGPSSweep})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job gps_sweep failed")
	assert.True(t, released)
}

func TestJobService_RunJob_AlreadyRunning(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()

	f.locker.EXPECT().TryLock(ctx, "hivewatch:job:daily_notifications", 10*time.Minute).Return(nil, false, nil)

	result, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobDailyNotifications})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, usecase.ErrJobAlreadyRunning))
	f.ruleEngine.AssertNotCalled(t, "RunDaily", mock.Anything, mock.Anything)
}

func TestJobService_RunJob_LockError(t *testing.T) {
	f := createTestJobService(t)
	ctx := context.Background()

	f.locker.EXPECT().TryLock(ctx, "hivewatch:job:gps_sweep", 10*time.Minute).Return(nil, false, errors.New("redis: connection refused"))

	_, err := f.service.RunJob(ctx, service.JobEvent{Job: service.JobGPSSweep})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire job lock")
}

func TestJobService_RunJob_UnknownJob(t *testing.T) {
	f := createTestJobService(t)

	_, err := f.service.RunJob(context.Background(), service.JobEvent{Job: "compact_hives"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUnknownJob))
}
