// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no matching authentication record exists.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// Create persists a new authentication method for a user.
	Create(ctx context.Context, auth *entity.Authentication) error

	// FindByUserAndProvider retrieves the authentication record for a user
	// and a specific provider ("email", "google").
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)

	// FindByProviderUserID retrieves the authentication record matching an
	// external provider's subject identifier.
	FindByProviderUserID(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
