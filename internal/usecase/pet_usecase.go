package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// PetInput carries the editable fields of a pet record.
type PetInput struct {
	Name    string
	Species string
	Breed   string
	Age     int
}

// PetUsecase defines the interface for pet management use cases.
// Every operation checks that the pet belongs to the requesting user.
type PetUsecase interface {
	// AddPet registers a new pet for a customer.
	AddPet(ctx context.Context, userID uuid.UUID, input PetInput) (*entity.Pet, error)

	// GetPet retrieves one of the customer's pets.
	GetPet(ctx context.Context, userID, petID uuid.UUID) (*entity.Pet, error)

	// ListPets retrieves all pets of a customer.
	ListPets(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error)

	// UpdatePet modifies one of the customer's pets.
	UpdatePet(ctx context.Context, userID, petID uuid.UUID, input PetInput) (*entity.Pet, error)

	// RemovePet deletes one of the customer's pets.
	RemovePet(ctx context.Context, userID, petID uuid.UUID) error
}
