package impl

import (
	"context"
	"testing"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	mockRepo "pinesvet/internal/mocks/repository"
	"pinesvet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNewsletterService(t *testing.T) (usecase.NewsletterUsecase, *mockRepo.MockNewsletterRepository) {
	newsletterRepo := mockRepo.NewMockNewsletterRepository(t)
	newsletterService := NewNewsletterService(NewsletterServiceParams{
		NewsletterRepo: newsletterRepo,
		Logger:         newDiscardLogger(),
	})

	return newsletterService, newsletterRepo
}

func TestNewsletterService_Subscribe_NormalizesEmail(t *testing.T) {
	newsletterService, newsletterRepo := newNewsletterService(t)

	ctx := context.Background()

	newsletterRepo.EXPECT().
		Subscribe(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Run(func(_ context.Context, subscription *entity.NewsletterSubscriber) {
			assert.Equal(t, "pet.lover@example.com", subscription.Email)
		}).
		Return(nil)

	subscriber, err := newsletterService.Subscribe(ctx, "  Pet.Lover@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "pet.lover@example.com", subscriber.Email)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	newsletterService, _ := newNewsletterService(t)

	subscriber, err := newsletterService.Subscribe(context.Background(), "not-an-email")
	assert.Nil(t, subscriber)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	newsletterService, newsletterRepo := newNewsletterService(t)

	ctx := context.Background()

	newsletterRepo.EXPECT().
		Subscribe(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Return(repository.ErrAlreadySubscribed)

	subscriber, err := newsletterService.Subscribe(ctx, "dup@example.com")
	assert.Nil(t, subscriber)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestNewsletterService_Unsubscribe_Normalizes(t *testing.T) {
	newsletterService, newsletterRepo := newNewsletterService(t)

	ctx := context.Background()

	newsletterRepo.EXPECT().Unsubscribe(ctx, "gone@example.com").Return(nil)

	err := newsletterService.Unsubscribe(ctx, " Gone@Example.com ")
	require.NoError(t, err)
}
