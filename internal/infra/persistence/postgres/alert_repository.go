package postgres

import (
	"context"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSensorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindUnacknowledgedAlerts returns the newest unacknowledged alerts of a kind.
func (repo *alertRepository) FindUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.unacknowledged(ctx, sensorID, kind).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find unacknowledged alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// CountUnacknowledgedAlerts counts the unacknowledged alerts of a kind.
func (repo *alertRepository) CountUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind) (int64, error) {
	var count int64

	if err := repo.unacknowledged(ctx, sensorID, kind).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count unacknowledged alerts")
	}

	return count, nil
}

// DeleteUnacknowledgedAlerts removes the unacknowledged alerts of a kind.
func (repo *alertRepository) DeleteUnacknowledgedAlerts(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind) (int64, error) {
	result := repo.unacknowledged(ctx, sensorID, kind).Delete(&model.AlertModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete unacknowledged alerts")
	}

	return result.RowsAffected, nil
}

func (repo *alertRepository) unacknowledged(ctx context.Context, sensorID uuid.UUID, kind entity.AlertKind) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("capteur_id = ? AND type = ? AND acquittee = ?", sensorID, kind.String(), false)
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:           data.ID,
		Kind:         entity.AlertKind(data.Type),
		Message:      data.Message,
		Acknowledged: data.Acquittee,
		SensorID:     data.CapteurID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:        data.ID,
		Type:      data.Kind.String(),
		Message:   data.Message,
		Acquittee: data.Acknowledged,
		CapteurID: data.SensorID,
		CreatedAt: data.CreatedAt,
	}
}
