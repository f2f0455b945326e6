package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"
	"hivewatch/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Rule thresholds in calendar days.
const (
	visitOverdueDays        = 30
	treatmentWindowStart    = 27
	treatmentWindowEnd      = 33
	sanitaryRecentTreatment = 14
)

// seasonalCalendar holds the beekeeping reminder sent on the first day of a month.
var seasonalCalendar = map[time.Month]string{
	time.February:  "C'est la periode de preparation des cadres",
	time.March:     "C'est la periode de premiere visite de printemps",
	time.April:     "C'est la periode de surveillance d'essaimage",
	time.May:       "C'est la periode de pose des hausses",
	time.June:      "C'est la periode de recolte de printemps",
	time.July:      "C'est la periode de recolte d'ete",
	time.September: "C'est la periode de traitement anti-varroa",
	time.October:   "C'est la periode de nourrissement d'hiver",
	time.November:  "C'est la periode de preparation de l'hivernage",
}

type ruleEngineService struct {
	hiveRepo         repository.HiveRepository
	interventionRepo repository.InterventionRepository
	membershipRepo   repository.MembershipRepository
	fanout           usecase.FanoutUsecase
	location         *time.Location
	logger           *slog.Logger
}

// RuleEngineServiceParams holds dependencies for the daily rule engine.
type RuleEngineServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	HiveRepo         repository.HiveRepository
	InterventionRepo repository.InterventionRepository
	MembershipRepo   repository.MembershipRepository
	Fanout           usecase.FanoutUsecase
}

// NewRuleEngineService creates the daily notification rule engine.
func NewRuleEngineService(params RuleEngineServiceParams) usecase.RuleEngineUsecase {
	return &ruleEngineService{
		hiveRepo:         params.HiveRepo,
		interventionRepo: params.InterventionRepo,
		membershipRepo:   params.MembershipRepo,
		fanout:           params.Fanout,
		location:         params.Config.Scheduler.Location(),
		logger:           params.Logger,
	}
}

func (srv *ruleEngineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dailyRun carries the state of one RunDaily call.
type dailyRun struct {
	now    time.Time // Stamped on created notifications.
	day    time.Time // Midnight of the run date in the scheduler timezone.
	report *usecase.DailyRunReport
}

// RunDaily runs the four generators for the calendar date of today. A failing unit of work is
// logged and counted; the run always completes unless the context is cancelled.
func (srv *ruleEngineService) RunDaily(ctx context.Context, today time.Time) (*usecase.DailyRunReport, error) {
	day := util.StartOfDay(today, srv.location)
	run := &dailyRun{
		now:    today,
		day:    day,
		report: &usecase.DailyRunReport{Date: util.FormatDate(day)},
	}

	run.report.VisitReminders = srv.visitReminders(ctx, run)
	run.report.TreatmentReminders = srv.treatmentReminders(ctx, run)
	run.report.Seasonal = srv.seasonalReminders(ctx, run)
	run.report.SanitaryAlerts = srv.sanitaryAlerts(ctx, run)
	run.report.Created = run.report.VisitReminders + run.report.TreatmentReminders +
		run.report.Seasonal + run.report.SanitaryAlerts

	srv.log(ctx).Info("[RuleEngine] Daily run finished",
		slog.String("date", run.report.Date),
		slog.Int("visit_reminders", run.report.VisitReminders),
		slog.Int("treatment_reminders", run.report.TreatmentReminders),
		slog.Int("seasonal", run.report.Seasonal),
		slog.Int("sanitary_alerts", run.report.SanitaryAlerts),
		slog.Int("failures", run.report.Failures),
	)

	if err := ctx.Err(); err != nil {
		return run.report, errors.WithStack(err)
	}

	return run.report, nil
}

// hivesWithCompany lists the hives in the given statuses whose apiary belongs to a company.
func (srv *ruleEngineService) hivesWithCompany(ctx context.Context, statuses ...entity.HiveStatus) ([]*entity.Hive, []uuid.UUID, error) {
	hives, err := srv.hiveRepo.FindHivesByStatus(ctx, statuses...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list hives")
	}

	kept := make([]*entity.Hive, 0, len(hives))
	ids := make([]uuid.UUID, 0, len(hives))
	for _, hive := range hives {
		if hive.CompanyID == nil {
			continue
		}
		kept = append(kept, hive)
		ids = append(ids, hive.ID)
	}

	return kept, ids, nil
}

// latestDates wraps LatestInterventionDates, skipping the query when there is nothing to look up.
func (srv *ruleEngineService) latestDates(ctx context.Context, hiveIDs []uuid.UUID, day time.Time, kinds ...entity.InterventionKind) (map[uuid.UUID]time.Time, error) {
	if len(hiveIDs) == 0 {
		return map[uuid.UUID]time.Time{}, nil
	}

	latest, err := srv.interventionRepo.LatestInterventionDates(ctx, hiveIDs, day, kinds...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest interventions")
	}

	return latest, nil
}

// abort logs a generator that could not list its candidates.
func (srv *ruleEngineService) abort(ctx context.Context, run *dailyRun, rule string, err error) int {
	srv.log(ctx).Error("[RuleEngine] Rule aborted", slog.String("rule", rule), slog.Any("error", err))
	run.report.Failures++

	return 0
}

// dispatch fans out one deduplicated notification and returns how many were created.
func (srv *ruleEngineService) dispatch(ctx context.Context, run *dailyRun, scope entity.NotificationScope, req usecase.FanoutRequest) int {
	key := entity.DispatchKey{Kind: req.Kind, Scope: scope, Day: run.day}

	result, err := srv.fanout.FanoutOnce(ctx, key, req)
	if err != nil {
		srv.log(ctx).Error("[RuleEngine] Failed to dispatch notification",
			slog.String("kind", req.Kind.String()),
			slog.String("scope", scope.Kind.String()),
			slog.String("scope_id", scope.ID.String()),
			slog.Any("error", err),
		)
		run.report.Failures++

		return 0
	}

	return result.Created()
}

// visitReminders notifies about hives without any intervention for at least 30 days.
func (srv *ruleEngineService) visitReminders(ctx context.Context, run *dailyRun) int {
	hives, ids, err := srv.hivesWithCompany(ctx, entity.HiveStatusActive, entity.HiveStatusWeak)
	if err != nil {
		return srv.abort(ctx, run, "visit", err)
	}

	latest, err := srv.latestDates(ctx, ids, run.day)
	if err != nil {
		return srv.abort(ctx, run, "visit", err)
	}

	created := 0
	for _, hive := range hives {
		if last, ok := latest[hive.ID]; ok && util.DaysBetween(last, run.day) < visitOverdueDays {
			continue
		}

		hiveID := hive.ID
		created += srv.dispatch(ctx, run, entity.HiveScope(hive.ID), usecase.FanoutRequest{
			CompanyID: *hive.CompanyID,
			Kind:      entity.NotificationKindVisitReminder,
			Title:     fmt.Sprintf("Visite requise sur %s", hive.RegistrationCode),
			Message:   fmt.Sprintf("Aucune visite sur %s depuis plus de %d jours", hive.RegistrationCode, visitOverdueDays),
			Date:      run.now,
			HiveID:    &hiveID,
		})
	}

	return created
}

// treatmentReminders notifies about hives whose last treatment is 27 to 33 days old.
func (srv *ruleEngineService) treatmentReminders(ctx context.Context, run *dailyRun) int {
	hives, ids, err := srv.hivesWithCompany(ctx, entity.HiveStatusActive, entity.HiveStatusWeak, entity.HiveStatusSick)
	if err != nil {
		return srv.abort(ctx, run, "treatment", err)
	}

	latest, err := srv.latestDates(ctx, ids, run.day, entity.InterventionKindTreatment)
	if err != nil {
		return srv.abort(ctx, run, "treatment", err)
	}

	created := 0
	for _, hive := range hives {
		last, ok := latest[hive.ID]
		if !ok {
			continue
		}
		age := util.DaysBetween(last, run.day)
		if age < treatmentWindowStart || age > treatmentWindowEnd {
			continue
		}

		hiveID := hive.ID
		created += srv.dispatch(ctx, run, entity.HiveScope(hive.ID), usecase.FanoutRequest{
			CompanyID: *hive.CompanyID,
			Kind:      entity.NotificationKindTreatmentReminder,
			Title:     fmt.Sprintf("Traitement a prevoir sur %s", hive.RegistrationCode),
			Message:   fmt.Sprintf("Le prochain traitement sur %s approche (dernier il y a %d jours)", hive.RegistrationCode, age),
			Date:      run.now,
			HiveID:    &hiveID,
		})
	}

	return created
}

// seasonalReminders notifies every company on the first day of a month listed in the calendar.
func (srv *ruleEngineService) seasonalReminders(ctx context.Context, run *dailyRun) int {
	if run.day.Day() != 1 {
		return 0
	}
	message, ok := seasonalCalendar[run.day.Month()]
	if !ok {
		return 0
	}

	companyIDs, err := srv.membershipRepo.FindCompanyIDsWithMembers(ctx)
	if err != nil {
		return srv.abort(ctx, run, "seasonal", errors.Wrap(err, "failed to list companies"))
	}

	created := 0
	for _, companyID := range companyIDs {
		created += srv.dispatch(ctx, run, entity.CompanyScope(companyID), usecase.FanoutRequest{
			CompanyID: companyID,
			Kind:      entity.NotificationKindSeasonal,
			Title:     "Rappel saisonnier",
			Message:   message,
			Date:      run.now,
		})
	}

	return created
}

// sanitaryAlerts notifies about sick hives without a treatment in the last 14 days.
func (srv *ruleEngineService) sanitaryAlerts(ctx context.Context, run *dailyRun) int {
	hives, ids, err := srv.hivesWithCompany(ctx, entity.HiveStatusSick)
	if err != nil {
		return srv.abort(ctx, run, "sanitary", err)
	}

	latest, err := srv.latestDates(ctx, ids, run.day, entity.InterventionKindTreatment)
	if err != nil {
		return srv.abort(ctx, run, "sanitary", err)
	}

	created := 0
	for _, hive := range hives {
		if last, ok := latest[hive.ID]; ok && util.DaysBetween(last, run.day) <= sanitaryRecentTreatment {
			continue
		}

		hiveID := hive.ID
		created += srv.dispatch(ctx, run, entity.HiveScope(hive.ID), usecase.FanoutRequest{
			CompanyID: *hive.CompanyID,
			Kind:      entity.NotificationKindSanitaryAlert,
			Title:     fmt.Sprintf("Alerte sanitaire : %s", hive.RegistrationCode),
			Message:   fmt.Sprintf("La ruche %s est Malade sans traitement recent", hive.RegistrationCode),
			Date:      run.now,
			HiveID:    &hiveID,
		})
	}

	return created
}
