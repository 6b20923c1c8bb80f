// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPetNotFound is returned when a pet is not found.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines the operations for pet persistence.
type PetRepository interface {
	// Create persists a new pet.
	Create(ctx context.Context, pet *entity.Pet) error

	// FindByID retrieves a pet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindByUser retrieves all pets owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error)

	// Update modifies an existing pet.
	Update(ctx context.Context, pet *entity.Pet) error

	// Delete removes a pet by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
