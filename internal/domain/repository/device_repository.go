package repository

import (
	"context"

	"hivewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the device operations used by push delivery.
type DeviceRepository interface {
	// FindActiveDevicesForUsers retrieves the active devices of the given users.
	FindActiveDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevicesByToken marks devices with the given FCM tokens inactive and returns how many changed.
	DeactivateDevicesByToken(ctx context.Context, tokens []string) (int64, error)
}
