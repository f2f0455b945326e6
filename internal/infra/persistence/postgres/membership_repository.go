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

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// FindMembersByCompany lists the memberships of a company with their users.
func (repo *membershipRepository) FindMembersByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Preload("Utilisateur").
		Where("entreprise_id = ?", companyID).
		Order("created_at").
		Find(&membershipModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find company members")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// FindMembership retrieves the membership of a user in a company with the user loaded.
func (repo *membershipRepository) FindMembership(ctx context.Context, userID, companyID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Preload("Utilisateur").
		Where("utilisateur_id = ? AND entreprise_id = ?", userID, companyID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindCompanyIDsWithMembers lists the distinct companies with at least one membership.
func (repo *membershipRepository) FindCompanyIDsWithMembers(ctx context.Context) ([]uuid.UUID, error) {
	var companyIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Distinct("entreprise_id").
		Order("entreprise_id").
		Pluck("entreprise_id", &companyIDs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list companies with members")
	}

	return companyIDs, nil
}

// FindUserByID retrieves a user by ID.
func (repo *membershipRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:        data.ID,
		UserID:    data.UtilisateurID,
		CompanyID: data.EntrepriseID,
		Role:      entity.Role(data.Role),
		User:      toUserDomain(data.Utilisateur),
		CreatedAt: data.CreatedAt,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		LastName:  data.Nom,
		FirstName: data.Prenom,
		Email:     data.Email,
	}
}
