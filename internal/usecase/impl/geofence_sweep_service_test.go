package impl

import (
	"context"
	"testing"
	"time"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	mockRepo "hivewatch/internal/mocks/repository"
	mockSvc "hivewatch/internal/mocks/service"
	mockUsecase "hivewatch/internal/mocks/usecase"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepFixture struct {
	service          *geofenceSweepService
	txManager        *mockRepo.MockTransactionManager
	sensorRepo       *mockRepo.MockSensorRepository
	hiveRepo         *mockRepo.MockHiveRepository
	membershipRepo   *mockRepo.MockMembershipRepository
	alertRepo        *mockRepo.MockAlertRepository
	notificationRepo *mockRepo.MockNotificationRepository
	positions        *mockSvc.MockPositionProvider
	mailer           *mockSvc.MockAlertMailer
	push             *mockUsecase.MockPushDispatcher
}

func createTestSweepService(t *testing.T) *sweepFixture {
	f := &sweepFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		sensorRepo:       mockRepo.NewMockSensorRepository(t),
		hiveRepo:         mockRepo.NewMockHiveRepository(t),
		membershipRepo:   mockRepo.NewMockMembershipRepository(t),
		alertRepo:        mockRepo.NewMockAlertRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		positions:        mockSvc.NewMockPositionProvider(t),
		mailer:           mockSvc.NewMockAlertMailer(t),
		push:             mockUsecase.NewMockPushDispatcher(t),
	}

	f.service = NewGeofenceSweepService(GeofenceSweepServiceParams{
		Logger:     newDiscardLogger(),
		TxManager:  f.txManager,
		SensorRepo: f.sensorRepo,
		HiveRepo:   f.hiveRepo,
		Positions:  f.positions,
		Mailer:     f.mailer,
		Push:       f.push,
	}).(*geofenceSweepService)
	f.service.checker.now = func() time.Time { return time.Date(2026, 5, 12, 3, 0, 0, 0, time.UTC) }

	return f
}

func TestGeofenceSweepService_Sweep(t *testing.T) {
	f := createTestSweepService(t)
	ctx := context.Background()
	companyID := uuid.New()

	hive := &entity.Hive{ID: uuid.New(), RegistrationCode: "R-007", CompanyID: &companyID}
	newSensor := func(identifier string) *entity.Sensor {
		return &entity.Sensor{
			ID:         uuid.New(),
			Kind:       entity.SensorKindGPS,
			Identifier: identifier,
			Active:     true,
			HiveID:     hive.ID,
			Geofence:   armedAt(43.60, 3.80, 100),
		}
	}
	stolen := newSensor("GPS-STOLEN")
	quiet := newSensor("GPS-QUIET")
	silent := newSensor("GPS-SILENT")
	offline := newSensor("GPS-OFFLINE")

	adminWithEmail := &entity.Membership{
		UserID: uuid.New(), Role: entity.RoleAdmin,
		User: &entity.User{FirstName: "Jean", LastName: "Rucher", Email: "jean@example.com"},
	}
	adminWithoutEmail := &entity.Membership{UserID: uuid.New(), Role: entity.RoleAdmin, User: &entity.User{}}

	f.sensorRepo.EXPECT().FindArmedGPSSensors(ctx).Return([]*entity.Sensor{stolen, quiet, silent, offline}, nil)

	f.positions.EXPECT().LatestPosition(ctx, "GPS-STOLEN").Return(&entity.Position{Latitude: 44.00, Longitude: 4.00}, nil)
	f.positions.EXPECT().LatestPosition(ctx, "GPS-QUIET").Return(&entity.Position{Latitude: 43.60, Longitude: 3.80}, nil)
	f.positions.EXPECT().LatestPosition(ctx, "GPS-SILENT").Return(nil, nil)
	f.positions.EXPECT().LatestPosition(ctx, "GPS-OFFLINE").
		Return(nil, &service.ProviderError{Code: service.ProviderErrTransport, Err: errors.New("connection refused")})

	f.hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil).Times(2)

	expectTransactions(t, f.txManager, txRepos{
		sensorRepo:       f.sensorRepo,
		alertRepo:        f.alertRepo,
		notificationRepo: f.notificationRepo,
		membershipRepo:   f.membershipRepo,
	})
	f.sensorRepo.EXPECT().FindSensorByIDForUpdate(ctx, stolen.ID).Return(stolen, nil)
	f.sensorRepo.EXPECT().FindSensorByIDForUpdate(ctx, quiet.ID).Return(quiet, nil)
	f.alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil).Once()
	f.membershipRepo.EXPECT().FindMembersByCompany(ctx, companyID).
		Return([]*entity.Membership{adminWithEmail, adminWithoutEmail}, nil)
	f.notificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.MatchedBy(func(notifications []*entity.Notification) bool {
			return len(notifications) == 1 && notifications[0].UserID == adminWithEmail.UserID
		})).
		Return(nil)
	f.sensorRepo.EXPECT().UpdateGeofenceState(ctx, stolen.ID, mock.Anything).Return(nil)
	f.sensorRepo.EXPECT().UpdateGeofenceState(ctx, quiet.ID, mock.Anything).Return(nil)

	f.push.EXPECT().Dispatch(ctx, mock.Anything).Return(usecase.PushReport{Sent: 1})
	f.mailer.EXPECT().
		SendGPSAlert(ctx, mock.MatchedBy(func(mail service.GPSAlertEmail) bool {
			return mail.To == "jean@example.com" && mail.RecipientName == "Jean Rucher" && mail.SensorIdentifier == "GPS-STOLEN"
		})).
		Return(nil).
		Once()

	report, err := f.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.SweepReport{Checked: 2, Skipped: 2, Breached: 1}, *report)
}

func TestGeofenceSweepService_Sweep_FailuresAreIsolated(t *testing.T) {
	f := createTestSweepService(t)
	ctx := context.Background()

	broken := &entity.Sensor{ID: uuid.New(), Identifier: "GPS-A", HiveID: uuid.New(), Geofence: armedAt(43.6, 3.8, 100)}
	orphan := &entity.Sensor{ID: uuid.New(), Identifier: "GPS-B", HiveID: uuid.New(), Geofence: armedAt(43.6, 3.8, 100)}

	f.sensorRepo.EXPECT().FindArmedGPSSensors(ctx).Return([]*entity.Sensor{broken, orphan}, nil)
	f.positions.EXPECT().LatestPosition(ctx, mock.Anything).Return(&entity.Position{Latitude: 43.6, Longitude: 3.8}, nil)
	f.hiveRepo.EXPECT().FindHiveByID(ctx, broken.HiveID).Return(&entity.Hive{ID: broken.HiveID}, nil)
	f.hiveRepo.EXPECT().FindHiveByID(ctx, orphan.HiveID).Return(nil, errors.New("connection reset"))

	expectTransactions(t, f.txManager, txRepos{sensorRepo: f.sensorRepo})
	f.sensorRepo.EXPECT().FindSensorByIDForUpdate(ctx, broken.ID).Return(nil, errors.New("deadlock detected"))

	report, err := f.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.SweepReport{Failed: 2}, *report)
}

func TestGeofenceSweepService_Sweep_ListError(t *testing.T) {
	f := createTestSweepService(t)
	ctx := context.Background()

	f.sensorRepo.EXPECT().FindArmedGPSSensors(ctx).Return(nil, errors.New("db down"))

	report, err := f.service.Sweep(ctx)

	require.Error(t, err)
	assert.Nil(t, report)
}
