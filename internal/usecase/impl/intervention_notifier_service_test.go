package impl

import (
	"context"
	"testing"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	mockRepo "hivewatch/internal/mocks/repository"
	mockUsecase "hivewatch/internal/mocks/usecase"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInterventionNotifier(t *testing.T) (
	usecase.InterventionNotifierUsecase,
	*mockRepo.MockHiveRepository,
	*mockRepo.MockMembershipRepository,
	*mockUsecase.MockFanoutUsecase,
) {
	hiveRepo := mockRepo.NewMockHiveRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	fanout := mockUsecase.NewMockFanoutUsecase(t)

	srv := NewInterventionNotifierService(InterventionNotifierServiceParams{
		Logger:         newDiscardLogger(),
		HiveRepo:       hiveRepo,
		MembershipRepo: membershipRepo,
		Fanout:         fanout,
	})

	return srv, hiveRepo, membershipRepo, fanout
}

func TestInterventionNotifier_NotifiesTeamExceptAuthor(t *testing.T) {
	srv, hiveRepo, membershipRepo, fanout := createTestInterventionNotifier(t)
	ctx := context.Background()
	companyID := uuid.New()
	hive := &entity.Hive{ID: uuid.New(), RegistrationCode: "R-12", CompanyID: &companyID}
	author := &entity.User{ID: uuid.New(), FirstName: "Marie", LastName: "Curie"}
	event := usecase.InterventionCreated{
		InterventionID: uuid.New(),
		HiveID:         hive.ID,
		ActorID:        author.ID,
		Kind:           entity.InterventionKindVisit,
	}

	hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil)
	membershipRepo.EXPECT().FindUserByID(ctx, author.ID).Return(author, nil)
	fanout.EXPECT().
		Fanout(ctx, mock.MatchedBy(func(req usecase.FanoutRequest) bool {
			return req.CompanyID == companyID &&
				req.Kind == entity.NotificationKindTeam &&
				req.Title == "Nouvelle intervention Visite" &&
				req.Message == "Marie Curie a cree une intervention Visite sur R-12" &&
				*req.ExcludeUserID == author.ID &&
				*req.InterventionID == event.InterventionID &&
				*req.HiveID == hive.ID
		})).
		Return(&usecase.FanoutResult{Notifications: make([]*entity.Notification, 2)}, nil)

	created, err := srv.NotifyInterventionCreated(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestInterventionNotifier_HiveWithoutCompany(t *testing.T) {
	srv, hiveRepo, _, _ := createTestInterventionNotifier(t)
	ctx := context.Background()
	hive := &entity.Hive{ID: uuid.New(), RegistrationCode: "R-13"}

	hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil)

	created, err := srv.NotifyInterventionCreated(ctx, usecase.InterventionCreated{
		HiveID:  hive.ID,
		ActorID: uuid.New(),
		Kind:    entity.InterventionKindHarvest,
	})

	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestInterventionNotifier_Errors(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name      string
		setup     func(ctx context.Context, hiveRepo *mockRepo.MockHiveRepository, membershipRepo *mockRepo.MockMembershipRepository, fanout *mockUsecase.MockFanoutUsecase) usecase.InterventionCreated
		wantErrIs error
	}{
		{
			name: "unknown hive",
			setup: func(ctx context.Context, hiveRepo *mockRepo.MockHiveRepository, _ *mockRepo.MockMembershipRepository, _ *mockUsecase.MockFanoutUsecase) usecase.InterventionCreated {
				id := uuid.New()
				hiveRepo.EXPECT().FindHiveByID(ctx, id).Return(nil, repository.ErrHiveNotFound)

				return usecase.InterventionCreated{HiveID: id, ActorID: uuid.New(), Kind: entity.InterventionKindVisit}
			},
			wantErrIs: domainerrors.ErrHiveNotFound,
		},
		{
			name: "unknown author",
			setup: func(ctx context.Context, hiveRepo *mockRepo.MockHiveRepository, membershipRepo *mockRepo.MockMembershipRepository, _ *mockUsecase.MockFanoutUsecase) usecase.InterventionCreated {
				hive := &entity.Hive{ID: uuid.New(), CompanyID: &companyID}
				actorID := uuid.New()
				hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil)
				membershipRepo.EXPECT().FindUserByID(ctx, actorID).Return(nil, repository.ErrUserNotFound)

				return usecase.InterventionCreated{HiveID: hive.ID, ActorID: actorID, Kind: entity.InterventionKindVisit}
			},
			wantErrIs: domainerrors.ErrUserNotFound,
		},
		{
			name: "fan-out failure",
			setup: func(ctx context.Context, hiveRepo *mockRepo.MockHiveRepository, membershipRepo *mockRepo.MockMembershipRepository, fanout *mockUsecase.MockFanoutUsecase) usecase.InterventionCreated {
				hive := &entity.Hive{ID: uuid.New(), CompanyID: &companyID}
				author := &entity.User{ID: uuid.New()}
				hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil)
				membershipRepo.EXPECT().FindUserByID(ctx, author.ID).Return(author, nil)
				fanout.EXPECT().Fanout(ctx, mock.Anything).Return(nil, errors.New("tx aborted"))

				return usecase.InterventionCreated{HiveID: hive.ID, ActorID: author.ID, Kind: entity.InterventionKindFeeding}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hiveRepo, membershipRepo, fanout := createTestInterventionNotifier(t)
			ctx := context.Background()
			event := tt.setup(ctx, hiveRepo, membershipRepo, fanout)

			created, err := srv.NotifyInterventionCreated(ctx, event)

			require.Error(t, err)
			assert.Zero(t, created)
			if tt.wantErrIs != nil {
				assert.True(t, errors.Is(err, tt.wantErrIs))
			}
		})
	}
}
