// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planChangeRepository implements the repository.PlanChangeRepository interface using GORM.
type planChangeRepository struct {
	db *gorm.DB
}

// NewPlanChangeRepository is the constructor for planChangeRepository.
func NewPlanChangeRepository(db *gorm.DB) repository.PlanChangeRepository {
	return &planChangeRepository{
		db: db,
	}
}

// Record appends one entry to a user's plan history.
func (repo *planChangeRepository) Record(ctx context.Context, change *entity.PlanChange) error {
	changeM := &model.PlanChangeModel{
		ID:        change.ID,
		UserID:    change.UserID,
		FromPlan:  change.FromPlan,
		ToPlan:    change.ToPlan,
		Action:    change.Action,
		ChangedAt: change.ChangedAt,
	}

	if err := repo.db.WithContext(ctx).Create(changeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference for plan change")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to record plan change")
	}

	change.ID = changeM.ID

	return nil
}

// FindByUser retrieves a user's plan history, newest first.
func (repo *planChangeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PlanChange, error) {
	var changeModels []*model.PlanChangeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").
		Find(&changeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plan changes by user")
	}

	changes := make([]*entity.PlanChange, 0, len(changeModels))
	for _, changeM := range changeModels {
		changes = append(changes, &entity.PlanChange{
			ID:        changeM.ID,
			UserID:    changeM.UserID,
			FromPlan:  changeM.FromPlan,
			ToPlan:    changeM.ToPlan,
			Action:    changeM.Action,
			ChangedAt: changeM.ChangedAt,
		})
	}

	return changes, nil
}
