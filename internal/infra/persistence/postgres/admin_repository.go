// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindCredential retrieves the stored back-office credential, if any.
func (repo *adminRepository) FindCredential(ctx context.Context) (*entity.AdminCredential, error) {
	var credentialM model.AdminCredentialModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin credential")
	}

	return &entity.AdminCredential{
		AdminID:      credentialM.AdminID,
		PasswordHash: credentialM.PasswordHash,
		UpdatedAt:    credentialM.UpdatedAt,
	}, nil
}

// SaveCredential inserts or replaces the back-office credential. The table
// holds a single logical row, so the first row is always the target.
func (repo *adminRepository) SaveCredential(ctx context.Context, credential *entity.AdminCredential) error {
	credentialM := &model.AdminCredentialModel{
		ID:           1,
		AdminID:      credential.AdminID,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"admin_id", "password_hash", "updated_at"}),
		}).
		Create(credentialM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save admin credential")
	}

	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// RecordActivity appends an entry to the back-office activity log.
func (repo *adminRepository) RecordActivity(ctx context.Context, activity *entity.AdminActivity) error {
	activityM := &model.AdminActivityModel{
		AdminID:    activity.AdminID,
		Action:     activity.Action,
		Detail:     activity.Detail,
		OccurredAt: activity.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record admin activity")
	}

	activity.ID = activityM.ID

	return nil
}

// ListActivity retrieves activity entries recorded within [from, to), newest first.
func (repo *adminRepository) ListActivity(ctx context.Context, from, to time.Time, limit int) ([]*entity.AdminActivity, error) {
	var activityModels []*model.AdminActivityModel

	query := repo.db.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Order("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admin activity")
	}

	activities := make([]*entity.AdminActivity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, &entity.AdminActivity{
			ID:         activityM.ID,
			AdminID:    activityM.AdminID,
			Action:     activityM.Action,
			Detail:     activityM.Detail,
			OccurredAt: activityM.OccurredAt,
		})
	}

	return activities, nil
}
