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
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Upsert inserts a feed entry or replaces the entry holding the same
// (user, source key) pair. The composite primary key is the conflict target,
// which is what keeps replayed events from stacking duplicates.
func (repo *notificationRepository) Upsert(ctx context.Context, entry *entity.FeedEntry) error {
	entryM := fromFeedEntryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "source_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"source", "title", "body", "read", "timestamp"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert feed entry")
	}

	return nil
}

// FindByUser retrieves all feed entries for a user.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FeedEntry, error) {
	var entryModels []*model.FeedEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feed entries by user")
	}

	entries := make([]*entity.FeedEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toFeedEntryDomain(entryM))
	}

	return entries, nil
}

// MarkAllRead flags every entry of a user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedEntryModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark feed entries read")
	}

	return result.RowsAffected, nil
}

// DeleteBySourceKey removes the entry for one source.
func (repo *notificationRepository) DeleteBySourceKey(ctx context.Context, userID uuid.UUID, sourceKey string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND source_key = ?", userID, sourceKey).
		Delete(&model.FeedEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feed entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedEntryNotFound
	}

	return nil
}

// toFeedEntryDomain converts a GORM FeedEntryModel to a domain entity.
func toFeedEntryDomain(data *model.FeedEntryModel) *entity.FeedEntry {
	if data == nil {
		return nil
	}

	return &entity.FeedEntry{
		SourceKey: data.SourceKey,
		UserID:    data.UserID,
		Source:    entity.FeedSource(data.Source),
		Title:     data.Title,
		Body:      data.Body,
		Read:      data.Read,
		Timestamp: data.Timestamp,
	}
}

// fromFeedEntryDomain converts a domain FeedEntry entity to a GORM model.
func fromFeedEntryDomain(data *entity.FeedEntry) *model.FeedEntryModel {
	if data == nil {
		return nil
	}

	return &model.FeedEntryModel{
		UserID:    data.UserID,
		SourceKey: data.SourceKey,
		Source:    string(data.Source),
		Title:     data.Title,
		Body:      data.Body,
		Read:      data.Read,
		Timestamp: data.Timestamp,
	}
}
