package postgres

import (
	"context"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// hiveRepository implements the repository.HiveRepository interface.
type hiveRepository struct {
	db *gorm.DB
}

// NewHiveRepository is the constructor for hiveRepository.
func NewHiveRepository(db *gorm.DB) repository.HiveRepository {
	return &hiveRepository{
		db: db,
	}
}

// FindHiveByID retrieves a hive with its apiary so the owning company is known.
func (repo *hiveRepository) FindHiveByID(ctx context.Context, id uuid.UUID) (*entity.Hive, error) {
	var hiveM model.HiveModel

	if err := repo.db.WithContext(ctx).
		Preload("Rucher").
		Where("id = ?", id).
		First(&hiveM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHiveNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hive by ID")
	}

	return toHiveDomain(&hiveM), nil
}

// FindHivesByStatus lists hives in any of the given statuses, with their apiaries.
func (repo *hiveRepository) FindHivesByStatus(ctx context.Context, statuses ...entity.HiveStatus) ([]*entity.Hive, error) {
	if len(statuses) == 0 {
		return []*entity.Hive{}, nil
	}

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.String())
	}

	var hiveModels []*model.HiveModel
	if err := repo.db.WithContext(ctx).
		Preload("Rucher").
		Where("statut IN ?", values).
		Order("immatriculation").
		Find(&hiveModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hives by status")
	}

	hives := make([]*entity.Hive, 0, len(hiveModels))
	for _, hiveM := range hiveModels {
		hives = append(hives, toHiveDomain(hiveM))
	}

	return hives, nil
}

// FindApiaryByID retrieves an apiary by ID.
func (repo *hiveRepository) FindApiaryByID(ctx context.Context, id uuid.UUID) (*entity.Apiary, error) {
	var apiaryM model.ApiaryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&apiaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApiaryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find apiary by ID")
	}

	return toApiaryDomain(&apiaryM), nil
}

// --- Mapper Functions ---

func toHiveDomain(data *model.HiveModel) *entity.Hive {
	if data == nil {
		return nil
	}

	hive := &entity.Hive{
		ID:               data.ID,
		RegistrationCode: data.Immatriculation,
		Status:           entity.HiveStatus(data.Statut),
		DiseaseID:        data.MaladieID,
		ApiaryID:         data.RucherID,
		CreatedAt:        data.CreatedAt,
	}
	if data.Rucher != nil {
		hive.CompanyID = data.Rucher.EntrepriseID
	}

	return hive
}

func toApiaryDomain(data *model.ApiaryModel) *entity.Apiary {
	if data == nil {
		return nil
	}

	return &entity.Apiary{
		ID:        data.ID,
		Name:      data.Nom,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CompanyID: data.EntrepriseID,
	}
}
