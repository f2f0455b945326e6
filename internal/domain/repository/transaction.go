package repository

import "context"

// TransactionManager runs work atomically. Geofence checks lock the sensor row
// inside it, and fan-outs claim their dispatch key in the same transaction as
// the notifications they insert.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewSensorRepository() SensorRepository
	NewAlertRepository() AlertRepository
	NewNotificationRepository() NotificationRepository
	NewMembershipRepository() MembershipRepository
}
