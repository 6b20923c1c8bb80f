package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedView is the rendered notification feed for one poll: the merged,
// sorted entries, the unread count, and whether the client should play the
// notification sound for this observation.
type FeedView struct {
	Entries  []entity.FeedEntry `json:"entries"`
	Unread   int                `json:"unread"`
	SoundCue bool               `json:"sound_cue"`
}

// NotificationUsecase defines the interface for the notification feed use cases.
type NotificationUsecase interface {
	// GetFeed returns the merged feed. lastSeenUnread is the unread count
	// the client observed on its previous poll; the sound cue fires only
	// when the count strictly increased and the user has sound enabled.
	GetFeed(ctx context.Context, userID uuid.UUID, lastSeenUnread int) (*FeedView, error)

	// MarkAllRead flags the whole feed as read in one transaction and
	// returns the number of entries flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// RecordEntry folds one event into the user's persisted feed; replayed
	// events with a known source key overwrite in place.
	RecordEntry(ctx context.Context, entry *entity.FeedEntry) error
}
