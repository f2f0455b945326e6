package impl

import (
	"context"
	"fmt"
	"testing"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	mockRepo "hivewatch/internal/mocks/repository"
	mockSvc "hivewatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushDispatcher(t *testing.T) (*pushDispatcher, *mockRepo.MockDeviceRepository, *mockSvc.MockNotificationService) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	d := NewPushDispatcher(PushDispatcherParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	}).(*pushDispatcher)

	return d, deviceRepo, notificationSvc
}

func TestPushDispatcher_Dispatch(t *testing.T) {
	d, deviceRepo, notificationSvc := createTestPushDispatcher(t)
	ctx := context.Background()
	hiveID := uuid.New()
	alice, bob := uuid.New(), uuid.New()

	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: alice, Kind: entity.NotificationKindGPSAlert, Title: "Alerte", Message: "m", HiveID: &hiveID},
		{ID: uuid.New(), UserID: bob, Kind: entity.NotificationKindGPSAlert, Title: "Alerte", Message: "m", HiveID: &hiveID},
	}

	deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{alice, bob}).Return([]*entity.UserDevice{
		{UserID: alice, FCMToken: "alice-phone"},
		{UserID: alice, FCMToken: "alice-tablet"},
		{UserID: bob, FCMToken: "bob-phone"},
	}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"alice-phone", "alice-tablet", "bob-phone"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			_, hasID := msg.Data["notification_id"]

			return msg.Title == "Alerte" && msg.Body == "m" &&
				msg.Data["kind"] == "AlerteGPS" && msg.Data["hive_id"] == hiveID.String() && !hasID
		})).
		Return(&service.PushResult{SuccessCount: 2, FailureCount: 1, InvalidTokens: []string{"alice-tablet"}}, nil)
	deviceRepo.EXPECT().DeactivateDevicesByToken(ctx, []string{"alice-tablet"}).Return(1, nil)

	report := d.Dispatch(ctx, notifications)

	assert.Equal(t, 3, report.Devices)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Deactivated)
}

func TestPushDispatcher_Dispatch_SingleRecipientCarriesNotificationID(t *testing.T) {
	d, deviceRepo, notificationSvc := createTestPushDispatcher(t)
	ctx := context.Background()
	n := &entity.Notification{ID: uuid.New(), UserID: uuid.New(), Kind: entity.NotificationKindTeam, Title: "t", Message: "m"}

	deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{n.UserID}).
		Return([]*entity.UserDevice{{UserID: n.UserID, FCMToken: "phone"}, {UserID: n.UserID, FCMToken: "watch"}}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"phone", "watch"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			_, hasHive := msg.Data["hive_id"]

			return msg.Data["notification_id"] == n.ID.String() && !hasHive
		})).
		Return(&service.PushResult{SuccessCount: 2}, nil)

	report := d.Dispatch(ctx, []*entity.Notification{n})

	assert.Equal(t, 2, report.Sent)
	assert.Zero(t, report.Deactivated)
}

func TestPushDispatcher_Dispatch_Batches(t *testing.T) {
	d, deviceRepo, notificationSvc := createTestPushDispatcher(t)
	ctx := context.Background()

	total := service.MaxPushBatchSize + 20
	notifications := make([]*entity.Notification, 0, total)
	devices := make([]*entity.UserDevice, 0, total)
	for i := range total {
		userID := uuid.New()
		notifications = append(notifications, &entity.Notification{ID: uuid.New(), UserID: userID, Kind: entity.NotificationKindSeasonal, Title: "Rappel saisonnier", Message: "m"})
		devices = append(devices, &entity.UserDevice{UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, mock.Anything).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxPushBatchSize }), mock.Anything).
		Return(&service.PushResult{SuccessCount: service.MaxPushBatchSize}, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything).
		Return(nil, errors.New("fcm unavailable")).Once()

	report := d.Dispatch(ctx, notifications)

	assert.Equal(t, total, report.Devices)
	assert.Equal(t, service.MaxPushBatchSize, report.Sent)
	assert.Equal(t, 20, report.Failed)
}

func TestPushDispatcher_Dispatch_NothingToSend(t *testing.T) {
	t.Run("no notifications", func(t *testing.T) {
		d, _, _ := createTestPushDispatcher(t)

		assert.Zero(t, d.Dispatch(context.Background(), nil))
	})

	t.Run("no devices", func(t *testing.T) {
		d, deviceRepo, _ := createTestPushDispatcher(t)
		ctx := context.Background()
		n := &entity.Notification{UserID: uuid.New()}
		deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{n.UserID}).Return(nil, nil)

		assert.Zero(t, d.Dispatch(ctx, []*entity.Notification{n}))
	})

	t.Run("push disabled", func(t *testing.T) {
		d, deviceRepo, notificationSvc := createTestPushDispatcher(t)
		ctx := context.Background()
		n := &entity.Notification{UserID: uuid.New()}
		deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, []uuid.UUID{n.UserID}).
			Return([]*entity.UserDevice{{UserID: n.UserID, FCMToken: "phone"}}, nil)
		notificationSvc.EXPECT().SendBatchNotification(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrPushDisabled)

		report := d.Dispatch(ctx, []*entity.Notification{n})

		require.Equal(t, 1, report.Devices)
		assert.Zero(t, report.Failed)
	})
}
