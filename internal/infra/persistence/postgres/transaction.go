// Package postgres implements the repositories on GORM over PostgreSQL.
package postgres

import (
	"context"

	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute pins the transaction to the primary: row locks and dispatch claims
// must never reach a replica. A panic in fn rolls back and propagates.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// txRepositories builds repositories sharing a single *gorm.DB transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewSensorRepository() repository.SensorRepository {
	return NewSensorRepository(r.tx)
}

func (r txRepositories) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(r.tx)
}

func (r txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(r.tx)
}

func (r txRepositories) NewMembershipRepository() repository.MembershipRepository {
	return NewMembershipRepository(r.tx)
}
