package impl

import (
	"context"
	"testing"
	"time"

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

type fanoutFixture struct {
	service          *fanoutService
	txManager        *mockRepo.MockTransactionManager
	membershipRepo   *mockRepo.MockMembershipRepository
	notificationRepo *mockRepo.MockNotificationRepository
	push             *mockUsecase.MockPushDispatcher
}

func createTestFanoutService(t *testing.T) *fanoutFixture {
	f := &fanoutFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		membershipRepo:   mockRepo.NewMockMembershipRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		push:             mockUsecase.NewMockPushDispatcher(t),
	}
	f.service = NewFanoutService(FanoutServiceParams{
		TxManager: f.txManager,
		Push:      f.push,
		Logger:    newDiscardLogger(),
	}).(*fanoutService)

	expectTransactions(t, f.txManager, txRepos{
		membershipRepo:   f.membershipRepo,
		notificationRepo: f.notificationRepo,
	})

	return f
}

func TestSelectRecipients(t *testing.T) {
	author := uuid.New()
	admin := &entity.Membership{UserID: uuid.New(), Role: entity.RoleAdmin, User: &entity.User{Email: "admin@example.com"}}
	mutedAdmin := &entity.Membership{UserID: uuid.New(), Role: entity.RoleAdmin}
	beekeeper := &entity.Membership{UserID: uuid.New(), Role: entity.RoleBeekeeper, User: &entity.User{Email: "bk@example.com"}}
	writer := &entity.Membership{UserID: author, Role: entity.RoleBeekeeper, User: &entity.User{Email: "me@example.com"}}
	members := []*entity.Membership{admin, mutedAdmin, beekeeper, writer}

	tests := []struct {
		name string
		req  usecase.FanoutRequest
		want []*entity.Membership
	}{
		{"everyone", usecase.FanoutRequest{}, members},
		{"exclude author", usecase.FanoutRequest{ExcludeUserID: &author}, []*entity.Membership{admin, mutedAdmin, beekeeper}},
		{"admins only", usecase.FanoutRequest{Roles: entity.Roles{entity.RoleAdmin}}, []*entity.Membership{admin, mutedAdmin}},
		{"admins with email", usecase.FanoutRequest{Roles: entity.Roles{entity.RoleAdmin}, RequireEmail: true}, []*entity.Membership{admin}},
		{"readers", usecase.FanoutRequest{Roles: entity.Roles{entity.RoleReader}}, []*entity.Membership{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectRecipients(members, tt.req))
		})
	}
}

func TestFanoutService_Fanout(t *testing.T) {
	f := createTestFanoutService(t)
	ctx := context.Background()
	companyID := uuid.New()
	hiveID := uuid.New()
	date := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	members := []*entity.Membership{
		{UserID: uuid.New(), CompanyID: companyID, Role: entity.RoleAdmin},
		{UserID: uuid.New(), CompanyID: companyID, Role: entity.RoleReader},
	}

	f.membershipRepo.EXPECT().FindMembersByCompany(ctx, companyID).Return(members, nil)
	f.notificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.MatchedBy(func(notifications []*entity.Notification) bool {
			if len(notifications) != 2 {
				return false
			}
			for i, n := range notifications {
				if n.UserID != members[i].UserID || n.CompanyID != companyID || *n.HiveID != hiveID ||
					n.Kind != entity.NotificationKindTeam || !n.Date.Equal(date) || n.Read {
					return false
				}
			}

			return true
		})).
		Return(nil)
	f.push.EXPECT().Dispatch(ctx, mock.Anything).Return(usecase.PushReport{})

	result, err := f.service.Fanout(ctx, usecase.FanoutRequest{
		CompanyID: companyID,
		Kind:      entity.NotificationKindTeam,
		Title:     "Nouvelle intervention Visite",
		Message:   "Marie a cree une intervention Visite sur R-1",
		Date:      date,
		HiveID:    &hiveID,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created())
	assert.False(t, result.Skipped)
}

func TestFanoutService_Fanout_NoRecipients(t *testing.T) {
	f := createTestFanoutService(t)
	ctx := context.Background()
	companyID := uuid.New()

	f.membershipRepo.EXPECT().FindMembersByCompany(ctx, companyID).Return([]*entity.Membership{}, nil)

	result, err := f.service.Fanout(ctx, usecase.FanoutRequest{CompanyID: companyID, Kind: entity.NotificationKindTeam})

	require.NoError(t, err)
	assert.Zero(t, result.Created())
}

func TestFanoutService_FanoutOnce(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	companyID := uuid.New()
	hiveID := uuid.New()
	key := entity.DispatchKey{
		Kind:  entity.NotificationKindVisitReminder,
		Scope: entity.HiveScope(hiveID),
		Day:   day,
	}
	req := usecase.FanoutRequest{
		CompanyID: companyID,
		Kind:      entity.NotificationKindVisitReminder,
		Title:     "Visite requise sur R-1",
		HiveID:    &hiveID,
	}

	t.Run("first dispatch creates", func(t *testing.T) {
		f := createTestFanoutService(t)
		ctx := context.Background()

		f.notificationRepo.EXPECT().ExistsForScopeBetween(ctx, key.Kind, key.Scope, day, day.AddDate(0, 0, 1)).Return(false, nil)
		f.notificationRepo.EXPECT().
			ClaimDispatch(ctx, mock.MatchedBy(func(d *entity.NotificationDispatch) bool { return d.Key == key })).
			Return(true, nil)
		f.membershipRepo.EXPECT().FindMembersByCompany(ctx, companyID).
			Return([]*entity.Membership{{UserID: uuid.New()}, {UserID: uuid.New()}, {UserID: uuid.New()}}, nil)
		f.notificationRepo.EXPECT().BatchCreateNotifications(ctx, mock.Anything).Return(nil)
		f.notificationRepo.EXPECT().UpdateDispatchCount(ctx, key, 3).Return(nil)
		f.push.EXPECT().Dispatch(ctx, mock.Anything).Return(usecase.PushReport{})

		result, err := f.service.FanoutOnce(ctx, key, req)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Created())
		assert.False(t, result.Skipped)
	})

	t.Run("notification already dated that day", func(t *testing.T) {
		f := createTestFanoutService(t)
		ctx := context.Background()

		f.notificationRepo.EXPECT().ExistsForScopeBetween(ctx, key.Kind, key.Scope, day, day.AddDate(0, 0, 1)).Return(true, nil)

		result, err := f.service.FanoutOnce(ctx, key, req)

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Zero(t, result.Created())
		f.notificationRepo.AssertNotCalled(t, "ClaimDispatch", mock.Anything, mock.Anything)
	})

	t.Run("claim lost to a concurrent run", func(t *testing.T) {
		f := createTestFanoutService(t)
		ctx := context.Background()

		f.notificationRepo.EXPECT().ExistsForScopeBetween(ctx, key.Kind, key.Scope, day, day.AddDate(0, 0, 1)).Return(false, nil)
		f.notificationRepo.EXPECT().ClaimDispatch(ctx, mock.Anything).Return(false, nil)

		result, err := f.service.FanoutOnce(ctx, key, req)

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		f.membershipRepo.AssertNotCalled(t, "FindMembersByCompany", mock.Anything, mock.Anything)
	})

	t.Run("insert failure", func(t *testing.T) {
		f := createTestFanoutService(t)
		ctx := context.Background()

		f.notificationRepo.EXPECT().ExistsForScopeBetween(ctx, key.Kind, key.Scope, day, day.AddDate(0, 0, 1)).Return(false, nil)
		f.notificationRepo.EXPECT().ClaimDispatch(ctx, mock.Anything).Return(true, nil)
		f.membershipRepo.EXPECT().FindMembersByCompany(ctx, companyID).Return([]*entity.Membership{{UserID: uuid.New()}}, nil)
		f.notificationRepo.EXPECT().BatchCreateNotifications(ctx, mock.Anything).Return(errors.New("insert failed"))

		result, err := f.service.FanoutOnce(ctx, key, req)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to create notifications")
	})
}
