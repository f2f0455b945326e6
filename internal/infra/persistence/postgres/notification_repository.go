package postgres

import (
	"context"
	"time"

	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/repository"
	"hivewatch/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const notificationInsertBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotifications persists notifications in batches and fills their generated IDs.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		models = append(models, fromNotificationDomain(n))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, notificationInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	for i, m := range models {
		notifications[i].ID = m.ID
		notifications[i].CreatedAt = m.CreatedAt
		notifications[i].UpdatedAt = m.UpdatedAt
	}

	return nil
}

// ExistsForScopeBetween reports whether a notification of the kind exists for the scope in [from, to).
func (repo *notificationRepository) ExistsForScopeBetween(ctx context.Context, kind entity.NotificationKind, scope entity.NotificationScope, from, to time.Time) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("type = ? AND date >= ? AND date < ?", kind.String(), from, to)

	switch scope.Kind {
	case entity.ScopeKindHive:
		query = query.Where("ruche_id = ?", scope.ID)
	case entity.ScopeKindCompany:
		query = query.Where("entreprise_id = ?", scope.ID)
	default:
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown notification scope " + scope.Kind.String())
	}

	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check existing notifications")
	}

	return count > 0, nil
}

// ClaimDispatch inserts the dispatch key with ON CONFLICT DO NOTHING.
// A conflict means another run already claimed the key.
func (repo *notificationRepository) ClaimDispatch(ctx context.Context, dispatch *entity.NotificationDispatch) (bool, error) {
	dispatchM := fromDispatchDomain(dispatch)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "scope_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		Create(dispatchM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim notification dispatch")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	dispatch.CreatedAt = dispatchM.CreatedAt

	return true, nil
}

// UpdateDispatchCount stores the number of notifications created for a claimed key.
func (repo *notificationRepository) UpdateDispatchCount(ctx context.Context, key entity.DispatchKey, count int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationDispatchModel{}).
		Where("kind = ? AND scope_id = ? AND day = ?", key.Kind.String(), key.Scope.ID, dayOnly(key.Day)).
		Update("created_count", count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update dispatch count")
	}

	return nil
}

// dayOnly keeps the calendar date of t in its own location, as midnight UTC, for date columns.
func dayOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Mapper Functions ---

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:             data.ID,
		Type:           data.Kind.String(),
		Titre:          data.Title,
		Message:        data.Message,
		Lue:            data.Read,
		Date:           data.Date,
		UtilisateurID:  data.UserID,
		EntrepriseID:   data.CompanyID,
		RucheID:        data.HiveID,
		InterventionID: data.InterventionID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDispatchDomain(data *entity.NotificationDispatch) *model.NotificationDispatchModel {
	if data == nil {
		return nil
	}

	return &model.NotificationDispatchModel{
		Kind:         data.Key.Kind.String(),
		ScopeKind:    data.Key.Scope.Kind.String(),
		ScopeID:      data.Key.Scope.ID,
		Day:          dayOnly(data.Key.Day),
		CreatedCount: data.CreatedCount,
		CreatedAt:    data.CreatedAt,
	}
}
