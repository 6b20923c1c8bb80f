// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication is one login credential. An email/password pair and a
// linked Google account are separate rows for the same user.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // "email" or "google"
	ProviderUserID string // for Google, the ID token's sub claim
	PasswordHash   string // bcrypt hash, set only for the email provider
	CreatedAt      time.Time
}

// RefreshToken is a long-lived session record. TokenHash stores the SHA-256
// digest of the raw token; the raw value never reaches the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
