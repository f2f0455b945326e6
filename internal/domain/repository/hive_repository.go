package repository

import (
	"context"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for hive persistence.
var (
	// ErrHiveNotFound is returned when a hive is not found.
	ErrHiveNotFound = errors.New("hive not found")
	// ErrApiaryNotFound is returned when an apiary is not found.
	ErrApiaryNotFound = errors.New("apiary not found")
)

// HiveRepository reads hives and apiaries. The hive's CompanyID is resolved through its apiary.
type HiveRepository interface {
	// FindHiveByID retrieves a hive by ID.
	FindHiveByID(ctx context.Context, id uuid.UUID) (*entity.Hive, error)

	// FindHivesByStatus lists hives in any of the given statuses.
	FindHivesByStatus(ctx context.Context, statuses ...entity.HiveStatus) ([]*entity.Hive, error)

	// FindApiaryByID retrieves an apiary by ID.
	FindApiaryByID(ctx context.Context, id uuid.UUID) (*entity.Apiary, error)
}
