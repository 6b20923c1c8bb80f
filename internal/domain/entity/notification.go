// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedSource identifies which collection a feed entry originated from.
type FeedSource string

const (
	FeedSourceCarePlan    FeedSource = "care-plan"
	FeedSourceAppointment FeedSource = "appointment"
	FeedSourceOrder       FeedSource = "order"
	FeedSourceAdmin       FeedSource = "admin"
)

// FeedEntry is one notification in a user's unified feed. Entries are keyed
// by a per-source identifier so that replayed events overwrite in place
// instead of duplicating.
type FeedEntry struct {
	SourceKey string     `json:"source_key"` // Stable per-source identifier, e.g. "appointment-<id>".
	UserID    uuid.UUID  `json:"user_id"`    // The user this entry belongs to.
	Source    FeedSource `json:"source"`     // Originating collection.
	Title     string     `json:"title"`      // Short headline.
	Body      string     `json:"body"`       // Detail text.
	Read      bool       `json:"read"`       // Whether the user has seen this entry.
	Timestamp time.Time  `json:"timestamp"`  // Event time used for feed ordering.
}
