// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface using GORM.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// Subscribe adds an email to the mailing list. The unique constraint on the
// email column surfaces duplicate signups.
func (repo *newsletterRepository) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscriber) error {
	subscriberM := &model.NewsletterSubscriberModel{
		ID:           subscription.ID,
		Email:        subscription.Email,
		SubscribedAt: subscription.SubscribedAt,
	}

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadySubscribed
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to subscribe email")
	}

	subscription.ID = subscriberM.ID

	return nil
}

// List retrieves all subscriptions ordered by signup time.
func (repo *newsletterRepository) List(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	var subscriberModels []*model.NewsletterSubscriberModel

	if err := repo.db.WithContext(ctx).
		Order("subscribed_at ASC").
		Find(&subscriberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscribers")
	}

	subscribers := make([]*entity.NewsletterSubscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, &entity.NewsletterSubscriber{
			ID:           subscriberM.ID,
			Email:        subscriberM.Email,
			SubscribedAt: subscriberM.SubscribedAt,
		})
	}

	return subscribers, nil
}

// Unsubscribe removes an email from the mailing list.
func (repo *newsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.NewsletterSubscriberModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to unsubscribe email")
	}

	return nil
}
