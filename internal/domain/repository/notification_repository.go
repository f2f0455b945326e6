package repository

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"
)

// NotificationRepository defines notification and dispatch persistence.
type NotificationRepository interface {
	// BatchCreateNotifications persists notifications in one bulk insert.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// ExistsForScopeBetween reports whether a notification of the kind exists for the scope
	// with a date in [from, to).
	ExistsForScopeBetween(ctx context.Context, kind entity.NotificationKind, scope entity.NotificationScope, from, to time.Time) (bool, error)

	// ClaimDispatch records the dispatch key. It returns false when the key was already claimed.
	ClaimDispatch(ctx context.Context, dispatch *entity.NotificationDispatch) (bool, error)

	// UpdateDispatchCount stores the number of notifications created for a claimed key.
	UpdateDispatchCount(ctx context.Context, key entity.DispatchKey, count int) error
}
