// Package usecase defines the application's use case interfaces, the
// boundary between the HTTP delivery layer and the business logic.
package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create a customer account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthTokens is the pair of JWTs handed out on successful authentication.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// DeviceInfo carries a push registration from the client.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// UserUsecase defines the interface for account and session use cases.
type UserUsecase interface {
	// Register creates a new customer account with email/password credentials.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies email/password credentials and opens a session.
	Login(ctx context.Context, email, password string) (*entity.User, *AuthTokens, error)

	// GoogleSignIn verifies a Google ID token, creating the account on first
	// sign-in, and opens a session.
	GoogleSignIn(ctx context.Context, idToken string) (*entity.User, *AuthTokens, error)

	// RefreshSession exchanges a valid refresh token for a fresh token pair.
	RefreshSession(ctx context.Context, refreshToken string) (*AuthTokens, error)

	// Logout revokes the session holding the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves a customer's account, applying any deferred
	// care-plan downgrade that has come due.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile updates the customer's editable account fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) (*entity.User, error)

	// RegisterDevice stores a push notification token for the user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, device DeviceInfo) error

	// SetSoundEnabled toggles the notification sound preference.
	SetSoundEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error
}
