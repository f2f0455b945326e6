package impl

import (
	"context"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
)

// sensorAuthorizer resolves a sensor for an actor of the sensor's company.
type sensorAuthorizer struct {
	sensorRepo     repository.SensorRepository
	hiveRepo       repository.HiveRepository
	membershipRepo repository.MembershipRepository
}

// authorizedSensor is a sensor the actor may operate on.
type authorizedSensor struct {
	sensor     *entity.Sensor
	hive       *entity.Hive
	membership *entity.Membership
}

// authorizeSensor loads the sensor and checks that its hive belongs to the actor's company
// and that the actor is a member of that company.
func (a *sensorAuthorizer) authorizeSensor(ctx context.Context, actor usecase.Actor, sensorID uuid.UUID) (*authorizedSensor, error) {
	if actor.CompanyID == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingCompanyContext)
	}

	sensor, err := a.sensorRepo.FindSensorByID(ctx, sensorID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	hive, err := a.hiveRepo.FindHiveByID(ctx, sensor.HiveID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if hive.CompanyID == nil || *hive.CompanyID != *actor.CompanyID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "sensor does not belong to the current company")
	}

	membership, err := a.membershipRepo.FindMembership(ctx, actor.UserID, *actor.CompanyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return &authorizedSensor{sensor: sensor, hive: hive, membership: membership}, nil
}
