// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// sensorRepository implements the repository.SensorRepository interface.
type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{
		db: db,
	}
}

// FindSensorByID retrieves a sensor by its ID.
func (repo *sensorRepository) FindSensorByID(ctx context.Context, id uuid.UUID) (*entity.Sensor, error) {
	var sensorM model.SensorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sensorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find sensor by ID")
	}

	return toSensorDomain(&sensorM), nil
}

// FindSensorByIDForUpdate retrieves a sensor with SELECT ... FOR UPDATE on the primary.
func (repo *sensorRepository) FindSensorByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Sensor, error) {
	var sensorM model.SensorModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&sensorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock sensor")
	}

	return toSensorDomain(&sensorM), nil
}

// FindArmedGPSSensors lists active, armed GPS sensors with both reference coordinates.
func (repo *sensorRepository) FindArmedGPSSensors(ctx context.Context) ([]*entity.Sensor, error) {
	var sensorModels []*model.SensorModel

	if err := repo.db.WithContext(ctx).
		Where(`actif = ? AND type = ? AND "gpsAlertActive" = ?`, true, entity.SensorKindGPS.String(), true).
		Where(`"gpsReferenceLat" IS NOT NULL AND "gpsReferenceLng" IS NOT NULL`).
		Order("identifiant").
		Find(&sensorModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list armed GPS sensors")
	}

	return toSensorDomains(sensorModels), nil
}

// FindGPSSensorsByApiary lists the GPS sensors of the hives of an apiary.
func (repo *sensorRepository) FindGPSSensorsByApiary(ctx context.Context, apiaryID uuid.UUID) ([]*entity.Sensor, error) {
	var sensorModels []*model.SensorModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN ruches ON ruches.id = capteurs.ruche_id").
		Where("ruches.rucher_id = ? AND capteurs.type = ?", apiaryID, entity.SensorKindGPS.String()).
		Order("capteurs.identifiant").
		Find(&sensorModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list GPS sensors by apiary")
	}

	return toSensorDomains(sensorModels), nil
}

// UpdateGeofenceState persists the geofence columns of a sensor.
func (repo *sensorRepository) UpdateGeofenceState(ctx context.Context, sensorID uuid.UUID, state entity.GeofenceState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("id = ?", sensorID).
		Updates(map[string]any{
			"gpsAlertActive":     state.Armed,
			"gpsReferenceLat":    state.ReferenceLatitude,
			"gpsReferenceLng":    state.ReferenceLongitude,
			"gpsThresholdMeters": state.ThresholdMeters,
			"gpsLastCheckedAt":   state.LastCheckedAt,
			"gpsLastAlertAt":     state.LastAlertAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update geofence state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSensorDomain converts a GORM SensorModel to a domain Sensor entity.
func toSensorDomain(data *model.SensorModel) *entity.Sensor {
	if data == nil {
		return nil
	}

	threshold := data.GPSThresholdMeters
	if threshold <= 0 {
		threshold = entity.DefaultGeofenceThresholdMeters
	}

	return &entity.Sensor{
		ID:                  data.ID,
		Kind:                entity.SensorKind(data.Type),
		Identifier:          data.Identifiant,
		Active:              data.Actif,
		BatteryPct:          data.BatteriePct,
		LastCommunicationAt: data.DerniereCommunication,
		HiveID:              data.RucheID,
		Geofence: entity.GeofenceState{
			Armed:              data.GPSAlertActive,
			ReferenceLatitude:  data.GPSReferenceLat,
			ReferenceLongitude: data.GPSReferenceLng,
			ThresholdMeters:    threshold,
			LastCheckedAt:      data.GPSLastCheckedAt,
			LastAlertAt:        data.GPSLastAlertAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSensorDomains(models []*model.SensorModel) []*entity.Sensor {
	sensors := make([]*entity.Sensor, 0, len(models))
	for _, sensorM := range models {
		sensors = append(sensors, toSensorDomain(sensorM))
	}

	return sensors
}
