package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriberModel mirrors the 'newsletter_subscribers' table.
// The unique constraint on email is what surfaces duplicate signups.
type NewsletterSubscriberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	SubscribedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
