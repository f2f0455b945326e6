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

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// activeDevices keeps registrations that still accept pushes. Soft-deleted rows
// are excluded by gorm.
func activeDevices(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func (repo *deviceRepository) FindActiveDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []*model.UserDeviceModel
	err := repo.db.WithContext(ctx).
		Scopes(activeDevices).
		Where("user_id IN ?", userIDs).
		Order("user_id, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active devices for users")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = toDeviceDomain(row)
	}

	return devices, nil
}

// DeactivateDevicesByToken flags tokens FCM reported as unregistered. Rows are
// kept so a re-registration from the app can reactivate them.
func (repo *deviceRepository) DeactivateDevicesByToken(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Scopes(activeDevices).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		FCMToken:  row.FCMToken,
		Platform:  entity.DevicePlatform(row.Platform),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}
