// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"
)

// ErrAlreadySubscribed is returned when an email is already on the list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// NewsletterRepository defines the operations for newsletter persistence.
type NewsletterRepository interface {
	// Subscribe adds an email to the mailing list, returning
	// ErrAlreadySubscribed on a duplicate.
	Subscribe(ctx context.Context, subscription *entity.NewsletterSubscriber) error

	// List retrieves all subscriptions ordered by signup time.
	List(ctx context.Context) ([]*entity.NewsletterSubscriber, error)

	// Unsubscribe removes an email from the mailing list.
	Unsubscribe(ctx context.Context, email string) error
}
