package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type interventionNotifierService struct {
	hiveRepo       repository.HiveRepository
	membershipRepo repository.MembershipRepository
	fanout         usecase.FanoutUsecase
	logger         *slog.Logger
	now            func() time.Time
}

// InterventionNotifierServiceParams holds dependencies for the intervention notifier.
type InterventionNotifierServiceParams struct {
	fx.In

	Logger         *slog.Logger
	HiveRepo       repository.HiveRepository
	MembershipRepo repository.MembershipRepository
	Fanout         usecase.FanoutUsecase
}

// NewInterventionNotifierService creates the team notifier for new interventions.
func NewInterventionNotifierService(params InterventionNotifierServiceParams) usecase.InterventionNotifierUsecase {
	return &interventionNotifierService{
		hiveRepo:       params.HiveRepo,
		membershipRepo: params.MembershipRepo,
		fanout:         params.Fanout,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// NotifyInterventionCreated tells every member of the hive's company, except the author,
// that an intervention was recorded. Hives of apiaries without a company notify nobody.
func (srv *interventionNotifierService) NotifyInterventionCreated(ctx context.Context, event usecase.InterventionCreated) (int, error) {
	hive, err := srv.hiveRepo.FindHiveByID(ctx, event.HiveID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	if hive.CompanyID == nil {
		return 0, nil
	}

	author, err := srv.membershipRepo.FindUserByID(ctx, event.ActorID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}

	hiveID := hive.ID
	authorID := author.ID
	req := usecase.FanoutRequest{
		CompanyID: *hive.CompanyID,
		Kind:      entity.NotificationKindTeam,
		Title:     fmt.Sprintf("Nouvelle intervention %s", event.Kind),
		Message: fmt.Sprintf("%s a cree une intervention %s sur %s",
			author.DisplayName(), event.Kind, hive.RegistrationCode),
		Date:          srv.now(),
		HiveID:        &hiveID,
		ExcludeUserID: &authorID,
	}
	if event.InterventionID != uuid.Nil {
		interventionID := event.InterventionID
		req.InterventionID = &interventionID
	}

	result, err := srv.fanout.Fanout(ctx, req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to notify team")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("[Notifier] Team notified of intervention",
		slog.String("hive_id", hive.ID.String()),
		slog.String("kind", event.Kind.String()),
		slog.Int("created", result.Created()),
	)

	return result.Created(), nil
}
