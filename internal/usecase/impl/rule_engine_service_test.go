package impl

import (
	"context"
	"testing"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/errors"
	mockRepo "hivewatch/internal/mocks/repository"
	mockUsecase "hivewatch/internal/mocks/usecase"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ruleEngineFixture struct {
	service          *ruleEngineService
	hiveRepo         *mockRepo.MockHiveRepository
	interventionRepo *mockRepo.MockInterventionRepository
	membershipRepo   *mockRepo.MockMembershipRepository
	fanout           *mockUsecase.MockFanoutUsecase
	companyID        uuid.UUID
}

func createTestRuleEngine(t *testing.T) *ruleEngineFixture {
	f := &ruleEngineFixture{
		hiveRepo:         mockRepo.NewMockHiveRepository(t),
		interventionRepo: mockRepo.NewMockInterventionRepository(t),
		membershipRepo:   mockRepo.NewMockMembershipRepository(t),
		fanout:           mockUsecase.NewMockFanoutUsecase(t),
		companyID:        uuid.New(),
	}

	cfg := &config.Config{Scheduler: &config.SchedulerConfig{Timezone: "UTC"}}
	f.service = NewRuleEngineService(RuleEngineServiceParams{
		Config:           cfg,
		Logger:           newDiscardLogger(),
		HiveRepo:         f.hiveRepo,
		InterventionRepo: f.interventionRepo,
		MembershipRepo:   f.membershipRepo,
		Fanout:           f.fanout,
	}).(*ruleEngineService)

	return f
}

func (f *ruleEngineFixture) hive(code string, status entity.HiveStatus) *entity.Hive {
	return &entity.Hive{ID: uuid.New(), RegistrationCode: code, Status: status, CompanyID: &f.companyID}
}

// expectNoHives stubs every hive listing with an empty result.
func (f *ruleEngineFixture) expectNoHives(ctx context.Context) {
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, mock.Anything).Return(nil, nil).Maybe()
}

// created makes FanoutOnce report n notifications for every matching call.
func created(n int) func(context.Context, entity.DispatchKey, usecase.FanoutRequest) (*usecase.FanoutResult, error) {
	return func(context.Context, entity.DispatchKey, usecase.FanoutRequest) (*usecase.FanoutResult, error) {
		return &usecase.FanoutResult{Notifications: make([]*entity.Notification, n)}, nil
	}
}

func keyFor(kind entity.NotificationKind, hiveID uuid.UUID) any {
	return mock.MatchedBy(func(key entity.DispatchKey) bool {
		return key.Kind == kind && key.Scope == entity.HiveScope(hiveID)
	})
}

func TestRuleEngine_VisitReminders(t *testing.T) {
	f := createTestRuleEngine(t)
	ctx := context.Background()
	today := time.Date(2026, 4, 15, 6, 0, 0, 0, time.UTC)
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	overdue := f.hive("R-30", entity.HiveStatusActive)
	recent := f.hive("R-29", entity.HiveStatusWeak)
	never := f.hive("R-00", entity.HiveStatusActive)
	orphan := &entity.Hive{ID: uuid.New(), RegistrationCode: "R-X", Status: entity.HiveStatusActive}

	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak).
		Return([]*entity.Hive{overdue, recent, never, orphan}, nil)
	f.interventionRepo.EXPECT().LatestInterventionDates(ctx, []uuid.UUID{overdue.ID, recent.ID, never.ID}, day).
		Return(map[uuid.UUID]time.Time{
			overdue.ID: day.AddDate(0, 0, -30),
			recent.ID:  day.AddDate(0, 0, -29),
		}, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick).Return(nil, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusSick).Return(nil, nil)

	f.fanout.EXPECT().
		FanoutOnce(ctx, keyFor(entity.NotificationKindVisitReminder, overdue.ID), mock.MatchedBy(func(req usecase.FanoutRequest) bool {
			return req.Title == "Visite requise sur R-30" && req.CompanyID == f.companyID && *req.HiveID == overdue.ID &&
				req.Date.Equal(today) && len(req.Roles) == 0
		})).
		RunAndReturn(created(2)).Once()
	f.fanout.EXPECT().
		FanoutOnce(ctx, keyFor(entity.NotificationKindVisitReminder, never.ID), mock.Anything).
		RunAndReturn(created(2)).Once()

	report, err := f.service.RunDaily(ctx, today)

	require.NoError(t, err)
	assert.Equal(t, "2026-04-15", report.Date)
	assert.Equal(t, 4, report.VisitReminders)
	assert.Equal(t, 4, report.Created)
	assert.Zero(t, report.Failures)
}

func TestRuleEngine_TreatmentWindow(t *testing.T) {
	f := createTestRuleEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	ages := map[int]*entity.Hive{}
	var hives []*entity.Hive
	var ids []uuid.UUID
	for _, age := range []int{26, 27, 33, 34} {
		h := f.hive("R-T", entity.HiveStatusActive)
		ages[age] = h
		hives = append(hives, h)
		ids = append(ids, h.ID)
	}
	untreated := f.hive("R-U", entity.HiveStatusSick)
	hives = append(hives, untreated)
	ids = append(ids, untreated.ID)

	latest := map[uuid.UUID]time.Time{}
	for age, h := range ages {
		latest[h.ID] = day.AddDate(0, 0, -age)
	}

	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak).Return(nil, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick).
		Return(hives, nil)
	f.interventionRepo.EXPECT().LatestInterventionDates(ctx, ids, day, entity.InterventionKindTreatment).Return(latest, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusSick).Return(nil, nil)

	f.fanout.EXPECT().FanoutOnce(ctx, keyFor(entity.NotificationKindTreatmentReminder, ages[27].ID), mock.Anything).
		RunAndReturn(created(1)).Once()
	f.fanout.EXPECT().
		FanoutOnce(ctx, keyFor(entity.NotificationKindTreatmentReminder, ages[33].ID), mock.MatchedBy(func(req usecase.FanoutRequest) bool {
			return req.Message == "Le prochain traitement sur R-T approche (dernier il y a 33 jours)"
		})).
		RunAndReturn(created(1)).Once()

	report, err := f.service.RunDaily(ctx, day.Add(7*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 2, report.TreatmentReminders)
	assert.Equal(t, 2, report.Created)
}

func TestRuleEngine_SanitaryAlerts(t *testing.T) {
	f := createTestRuleEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	treated := f.hive("R-14", entity.HiveStatusSick)
	stale := f.hive("R-15", entity.HiveStatusSick)
	untreated := f.hive("R-NT", entity.HiveStatusSick)

	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak).Return(nil, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick).Return(nil, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusSick).
		Return([]*entity.Hive{treated, stale, untreated}, nil)
	f.interventionRepo.EXPECT().
		LatestInterventionDates(ctx, []uuid.UUID{treated.ID, stale.ID, untreated.ID}, day, entity.InterventionKindTreatment).
		Return(map[uuid.UUID]time.Time{
			treated.ID: day.AddDate(0, 0, -14),
			stale.ID:   day.AddDate(0, 0, -15),
		}, nil)

	f.fanout.EXPECT().
		FanoutOnce(ctx, keyFor(entity.NotificationKindSanitaryAlert, stale.ID), mock.MatchedBy(func(req usecase.FanoutRequest) bool {
			return req.Title == "Alerte sanitaire : R-15"
		})).
		RunAndReturn(created(3)).Once()
	f.fanout.EXPECT().FanoutOnce(ctx, keyFor(entity.NotificationKindSanitaryAlert, untreated.ID), mock.Anything).
		RunAndReturn(created(3)).Once()

	report, err := f.service.RunDaily(ctx, day)

	require.NoError(t, err)
	assert.Equal(t, 6, report.SanitaryAlerts)
}

func TestRuleEngine_SeasonalReminders(t *testing.T) {
	tests := []struct {
		name        string
		today       time.Time
		wantMessage string
	}{
		{"first of march", time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC), "C'est la periode de premiere visite de printemps"},
		{"first of september", time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC), "C'est la periode de traitement anti-varroa"},
		{"first of january", time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC), ""},
		{"first of august", time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC), ""},
		{"second of march", time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestRuleEngine(t)
			ctx := context.Background()
			f.expectNoHives(ctx)

			if tt.wantMessage != "" {
				companies := []uuid.UUID{uuid.New(), uuid.New()}
				f.membershipRepo.EXPECT().FindCompanyIDsWithMembers(ctx).Return(companies, nil)
				for _, companyID := range companies {
					f.fanout.EXPECT().
						FanoutOnce(ctx,
							mock.MatchedBy(func(key entity.DispatchKey) bool {
								return key.Kind == entity.NotificationKindSeasonal && key.Scope == entity.CompanyScope(companyID)
							}),
							mock.MatchedBy(func(req usecase.FanoutRequest) bool {
								return req.Message == tt.wantMessage && req.CompanyID == companyID && req.HiveID == nil
							})).
						RunAndReturn(created(2)).Once()
				}
			}

			report, err := f.service.RunDaily(ctx, tt.today)

			require.NoError(t, err)
			if tt.wantMessage == "" {
				assert.Zero(t, report.Seasonal)

				return
			}
			assert.Equal(t, 4, report.Seasonal)
		})
	}
}

func TestRuleEngine_FailuresDoNotStopTheRun(t *testing.T) {
	f := createTestRuleEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	first := f.hive("R-1", entity.HiveStatusActive)
	second := f.hive("R-2", entity.HiveStatusActive)

	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak).
		Return([]*entity.Hive{first, second}, nil)
	f.interventionRepo.EXPECT().LatestInterventionDates(ctx, []uuid.UUID{first.ID, second.ID}, day).
		Return(map[uuid.UUID]time.Time{}, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick).
		Return(nil, errors.New("db timeout"))
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusSick).Return(nil, nil)

	f.fanout.EXPECT().FanoutOnce(ctx, keyFor(entity.NotificationKindVisitReminder, first.ID), mock.Anything).
		Return(nil, errors.New("insert failed")).Once()
	f.fanout.EXPECT().FanoutOnce(ctx, keyFor(entity.NotificationKindVisitReminder, second.ID), mock.Anything).
		RunAndReturn(created(1)).Once()

	report, err := f.service.RunDaily(ctx, day)

	require.NoError(t, err)
	assert.Equal(t, 1, report.VisitReminders)
	assert.Equal(t, 2, report.Failures)
}

func TestRuleEngine_RerunIsSkipped(t *testing.T) {
	f := createTestRuleEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	hive := f.hive("R-1", entity.HiveStatusActive)

	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak).Return([]*entity.Hive{hive}, nil)
	f.interventionRepo.EXPECT().LatestInterventionDates(ctx, []uuid.UUID{hive.ID}, day).Return(map[uuid.UUID]time.Time{}, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick).Return(nil, nil)
	f.hiveRepo.EXPECT().FindHivesByStatus(ctx, entity.HiveStatusSick).Return(nil, nil)

	// The key carries the run date at midnight whatever the hour of the run.
	var keys []entity.DispatchKey
	f.fanout.EXPECT().FanoutOnce(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key entity.DispatchKey, _ usecase.FanoutRequest) (*usecase.FanoutResult, error) {
			keys = append(keys, key)
			if len(keys) == 1 {
				return &usecase.FanoutResult{Notifications: make([]*entity.Notification, 2)}, nil
			}

			return &usecase.FanoutResult{Skipped: true}, nil
		})

	first, err := f.service.RunDaily(ctx, day.Add(6*time.Hour))
	require.NoError(t, err)
	second, err := f.service.RunDaily(ctx, day.Add(18*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, first.Created)
	assert.Zero(t, second.Created)
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
	assert.True(t, keys[0].Day.Equal(day))
}
