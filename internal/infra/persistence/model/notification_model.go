package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedEntryModel mirrors the 'notification_feed_entries' table. The composite
// primary key on (user_id, source_key) makes replayed events overwrite the
// existing entry instead of stacking duplicates.
type FeedEntryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceKey string    `gorm:"type:varchar(100);primaryKey"`
	Source    string    `gorm:"type:varchar(30);not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	Read      bool      `gorm:"not null;default:false"`
	Timestamp time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FeedEntryModel) TableName() string {
	return "notification_feed_entries"
}
