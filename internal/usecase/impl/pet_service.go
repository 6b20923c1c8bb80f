package impl

import (
	"context"
	"log/slog"

	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// petService implements the PetUsecase interface.
type petService struct {
	petRepo repository.PetRepository
	logger  *slog.Logger
}

// PetServiceParams holds dependencies for PetService, injected by Fx.
type PetServiceParams struct {
	fx.In

	PetRepo repository.PetRepository
	Logger  *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		petRepo: params.PetRepo,
		logger:  params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPet registers a new pet for a customer.
func (srv *petService) AddPet(ctx context.Context, userID uuid.UUID, input usecase.PetInput) (*entity.Pet, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("pet name is required")
	}

	pet := &entity.Pet{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    input.Name,
		Species: input.Species,
		Breed:   input.Breed,
		Age:     input.Age,
	}
	if err := srv.petRepo.Create(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Debug("Added pet", slog.Any("userID", userID), slog.Any("petID", pet.ID))

	return pet, nil
}

// GetPet retrieves one of the customer's pets.
func (srv *petService) GetPet(ctx context.Context, userID, petID uuid.UUID) (*entity.Pet, error) {
	return srv.ownedPet(ctx, userID, petID)
}

// ListPets retrieves all pets of a customer.
func (srv *petService) ListPets(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pets by user")
	}

	return pets, nil
}

// UpdatePet modifies one of the customer's pets.
func (srv *petService) UpdatePet(ctx context.Context, userID, petID uuid.UUID, input usecase.PetInput) (*entity.Pet, error) {
	pet, err := srv.ownedPet(ctx, userID, petID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		pet.Name = input.Name
	}
	if input.Species != "" {
		pet.Species = input.Species
	}
	if input.Breed != "" {
		pet.Breed = input.Breed
	}
	if input.Age > 0 {
		pet.Age = input.Age
	}

	if err := srv.petRepo.Update(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return pet, nil
}

// RemovePet deletes one of the customer's pets.
func (srv *petService) RemovePet(ctx context.Context, userID, petID uuid.UUID) error {
	if _, err := srv.ownedPet(ctx, userID, petID); err != nil {
		return err
	}

	return errors.Wrap(srv.petRepo.Delete(ctx, petID), "failed to delete pet")
}

// ownedPet loads a pet and verifies it belongs to the requesting user.
func (srv *petService) ownedPet(ctx context.Context, userID, petID uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound.WrapMessage("pet lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}
	if pet.UserID != userID {
		return nil, domainerrors.ErrPetOwnershipViolation.WrapMessage("pet belongs to another account")
	}

	return pet, nil
}
