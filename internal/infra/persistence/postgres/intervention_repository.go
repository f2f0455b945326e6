package postgres

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// interventionRepository implements the repository.InterventionRepository interface.
type interventionRepository struct {
	db *gorm.DB
}

// NewInterventionRepository is the constructor for interventionRepository.
func NewInterventionRepository(db *gorm.DB) repository.InterventionRepository {
	return &interventionRepository{
		db: db,
	}
}

// FindInterventionByID retrieves an intervention by ID.
func (repo *interventionRepository) FindInterventionByID(ctx context.Context, id uuid.UUID) (*entity.Intervention, error) {
	var interventionM model.InterventionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&interventionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterventionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find intervention by ID")
	}

	return &entity.Intervention{
		ID:     interventionM.ID,
		Kind:   entity.InterventionKind(interventionM.Type),
		Date:   interventionM.Date,
		HiveID: interventionM.RucheID,
	}, nil
}

type latestInterventionRow struct {
	RucheID uuid.UUID
	Latest  time.Time
}

// LatestInterventionDates aggregates MAX(date) per hive in one query.
func (repo *interventionRepository) LatestInterventionDates(ctx context.Context, hiveIDs []uuid.UUID, asOf time.Time, kinds ...entity.InterventionKind) (map[uuid.UUID]time.Time, error) {
	latest := make(map[uuid.UUID]time.Time, len(hiveIDs))
	if len(hiveIDs) == 0 {
		return latest, nil
	}

	query := repo.db.WithContext(ctx).
		Model(&model.InterventionModel{}).
		Select("ruche_id, MAX(date) AS latest").
		Where("ruche_id IN ? AND date <= ?", hiveIDs, dayOnly(asOf)).
		Group("ruche_id")

	if len(kinds) > 0 {
		values := make([]string, 0, len(kinds))
		for _, k := range kinds {
			values = append(values, k.String())
		}
		query = query.Where("type IN ?", values)
	}

	var rows []latestInterventionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate latest interventions")
	}

	for _, row := range rows {
		latest[row.RucheID] = row.Latest
	}

	return latest, nil
}
