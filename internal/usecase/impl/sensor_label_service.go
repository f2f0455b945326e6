package impl

import (
	"context"

	"hivewatch/internal/domain/repository"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
)

type sensorLabelService struct {
	auth   *sensorAuthorizer
	qrCode service.QRCodeService
}

// NewSensorLabelService creates the sensor label use case.
func NewSensorLabelService(
	sensorRepo repository.SensorRepository,
	hiveRepo repository.HiveRepository,
	membershipRepo repository.MembershipRepository,
	qrCode service.QRCodeService,
) usecase.SensorLabelUsecase {
	return &sensorLabelService{
		auth: &sensorAuthorizer{
			sensorRepo:     sensorRepo,
			hiveRepo:       hiveRepo,
			membershipRepo: membershipRepo,
		},
		qrCode: qrCode,
	}
}

// Label renders the QR label of a sensor of the actor's company.
func (srv *sensorLabelService) Label(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID) ([]byte, error) {
	target, err := srv.auth.authorizeSensor(ctx, actor, sensorID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateSensorLabel(target.sensor.ID, target.sensor.Identifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render sensor label")
	}

	return png, nil
}
