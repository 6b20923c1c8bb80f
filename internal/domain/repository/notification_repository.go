// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedEntryNotFound is returned when a feed entry is not found.
var ErrFeedEntryNotFound = errors.New("feed entry not found")

// NotificationRepository defines the operations for the notification feed.
// Entries are keyed by (user, source key): re-recording an event for the
// same source replaces the previous entry instead of stacking a new one.
type NotificationRepository interface {
	// Upsert inserts a feed entry or replaces the entry holding the same
	// (user, source key) pair.
	Upsert(ctx context.Context, entry *entity.FeedEntry) error

	// FindByUser retrieves all feed entries for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FeedEntry, error)

	// MarkAllRead flags every entry of a user as read and returns the
	// number of entries flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteBySourceKey removes the entry for one source, used when the
	// underlying record is deleted.
	DeleteBySourceKey(ctx context.Context, userID uuid.UUID, sourceKey string) error
}
