package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"go.uber.org/fx"
)

type fanoutService struct {
	txManager repository.TransactionManager
	push      usecase.PushDispatcher
	logger    *slog.Logger
	now       func() time.Time
}

// FanoutServiceParams holds dependencies for the fan-out service.
type FanoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Push      usecase.PushDispatcher
	Logger    *slog.Logger
}

// NewFanoutService creates the notification fan-out use case.
func NewFanoutService(params FanoutServiceParams) usecase.FanoutUsecase {
	return &fanoutService{
		txManager: params.TxManager,
		push:      params.Push,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Fanout creates the notifications in one transaction, then pushes them.
func (srv *fanoutService) Fanout(ctx context.Context, req usecase.FanoutRequest) (*usecase.FanoutResult, error) {
	var result *usecase.FanoutResult

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		result, err = fanoutToMembers(ctx, repos.NewMembershipRepository(), repos.NewNotificationRepository(), req)

		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.dispatch(ctx, result)

	return result, nil
}

// FanoutOnce claims the dispatch key and creates the notifications in the same transaction.
// An existing notification of the kind for the scope on that day, or a lost claim, skips the fan-out.
func (srv *fanoutService) FanoutOnce(ctx context.Context, key entity.DispatchKey, req usecase.FanoutRequest) (*usecase.FanoutResult, error) {
	result := &usecase.FanoutResult{}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		notificationRepo := repos.NewNotificationRepository()

		from := key.Day
		to := from.AddDate(0, 0, 1)
		exists, err := notificationRepo.ExistsForScopeBetween(ctx, key.Kind, key.Scope, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to check existing notifications")
		}
		if exists {
			result.Skipped = true

			return nil
		}

		claimed, err := notificationRepo.ClaimDispatch(ctx, &entity.NotificationDispatch{
			Key:       key,
			CreatedAt: srv.now(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to claim dispatch key")
		}
		if !claimed {
			result.Skipped = true

			return nil
		}

		created, err := fanoutToMembers(ctx, repos.NewMembershipRepository(), notificationRepo, req)
		if err != nil {
			return err
		}
		result = created

		if err := notificationRepo.UpdateDispatchCount(ctx, key, created.Created()); err != nil {
			return errors.Wrap(err, "failed to record dispatch count")
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if result.Skipped {
		srv.log(ctx).Debug("[Fanout] Dispatch key already used",
			slog.String("kind", key.Kind.String()),
			slog.String("scope", key.Scope.Kind.String()),
			slog.String("scope_id", key.Scope.ID.String()),
			slog.String("day", key.Day.Format(time.DateOnly)),
		)

		return result, nil
	}

	srv.dispatch(ctx, result)

	return result, nil
}

func (srv *fanoutService) dispatch(ctx context.Context, result *usecase.FanoutResult) {
	if srv.push == nil || result.Created() == 0 {
		return
	}
	srv.push.Dispatch(ctx, result.Notifications)
}
