package repository

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
)

// ErrInterventionNotFound is returned when an intervention is not found.
var ErrInterventionNotFound = errors.New("intervention not found")

// InterventionRepository reads interventions.
type InterventionRepository interface {
	// FindInterventionByID retrieves an intervention by ID.
	FindInterventionByID(ctx context.Context, id uuid.UUID) (*entity.Intervention, error)

	// LatestInterventionDates returns, per hive, the date of the most recent intervention
	// dated on or before asOf. When kinds is empty every kind counts.
	// Hives without a matching intervention are absent from the map.
	LatestInterventionDates(ctx context.Context, hiveIDs []uuid.UUID, asOf time.Time, kinds ...entity.InterventionKind) (map[uuid.UUID]time.Time, error)
}
