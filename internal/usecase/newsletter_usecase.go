package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"
)

// NewsletterUsecase defines the interface for mailing list use cases.
type NewsletterUsecase interface {
	// Subscribe adds an email to the mailing list; duplicates are rejected.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)

	// ListSubscribers returns the full mailing list (back-office).
	ListSubscribers(ctx context.Context) ([]*entity.NewsletterSubscriber, error)

	// Unsubscribe removes an email from the mailing list.
	Unsubscribe(ctx context.Context, email string) error
}
