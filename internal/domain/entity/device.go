package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the mobile platform of a push device.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
)

// UserDevice is a mobile app installation that receives FCM pushes for a user.
// Devices whose token FCM reports as unregistered are deactivated, not deleted.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	FCMToken  string         `json:"-"`
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
}
