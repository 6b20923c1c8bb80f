package service

import (
	"context"

	"pinesvet/internal/domain/entity"
)

// AdminSessionStore defines the interface for server-side back-office sessions.
// Sessions live outside the database so they can carry a TTL and be revoked
// centrally without touching client state.
type AdminSessionStore interface {
	// Save stores a session under its token with the configured TTL.
	Save(ctx context.Context, session *entity.AdminSession) error

	// Find retrieves the session for a token. It returns nil without error
	// when the token is unknown or expired.
	Find(ctx context.Context, token string) (*entity.AdminSession, error)

	// Delete revokes a session (logout).
	Delete(ctx context.Context, token string) error

	// Touch extends a live session's TTL, keeping active admins signed in.
	Touch(ctx context.Context, token string) error
}
