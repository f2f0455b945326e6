package impl

import (
	"context"
	"testing"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/errors"
	mockRepo "hivewatch/internal/mocks/repository"
	mockSvc "hivewatch/internal/mocks/service"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorLabelService_Label(t *testing.T) {
	sensorRepo := mockRepo.NewMockSensorRepository(t)
	hiveRepo := mockRepo.NewMockHiveRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	srv := NewSensorLabelService(sensorRepo, hiveRepo, membershipRepo, qrCode)

	ctx := context.Background()
	companyID := uuid.New()
	actor := usecase.Actor{UserID: uuid.New(), CompanyID: &companyID}
	hive := &entity.Hive{ID: uuid.New(), CompanyID: &companyID}
	sensor := &entity.Sensor{ID: uuid.New(), Kind: entity.SensorKindWeight, Identifier: "W-77", HiveID: hive.ID}
	png := []byte{0x89, 'P', 'N', 'G'}

	sensorRepo.EXPECT().FindSensorByID(ctx, sensor.ID).Return(sensor, nil)
	hiveRepo.EXPECT().FindHiveByID(ctx, hive.ID).Return(hive, nil)
	membershipRepo.EXPECT().FindMembership(ctx, actor.UserID, companyID).Return(&entity.Membership{}, nil)
	qrCode.EXPECT().GenerateSensorLabel(sensor.ID, "W-77").Return(png, nil)

	got, err := srv.Label(ctx, actor, sensor.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestSensorLabelService_Label_MissingCompany(t *testing.T) {
	srv := NewSensorLabelService(
		mockRepo.NewMockSensorRepository(t),
		mockRepo.NewMockHiveRepository(t),
		mockRepo.NewMockMembershipRepository(t),
		mockSvc.NewMockQRCodeService(t),
	)

	_, err := srv.Label(context.Background(), usecase.Actor{UserID: uuid.New()}, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCompanyContext))
}
