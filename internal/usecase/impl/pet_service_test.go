package impl

import (
	"context"
	"testing"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	mockRepo "pinesvet/internal/mocks/repository"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPetService(t *testing.T) (usecase.PetUsecase, *mockRepo.MockPetRepository) {
	petRepo := mockRepo.NewMockPetRepository(t)
	petService := NewPetService(PetServiceParams{
		PetRepo: petRepo,
		Logger:  newDiscardLogger(),
	})

	return petService, petRepo
}

func TestPetService_AddPet_Success(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	userID := uuid.New()

	petRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pet")).
		Return(nil)

	pet, err := petService.AddPet(ctx, userID, usecase.PetInput{
		Name:    "Milo",
		Species: "dog",
		Breed:   "Beagle",
		Age:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, pet.UserID)
	assert.Equal(t, "Milo", pet.Name)
	assert.NotEqual(t, uuid.Nil, pet.ID)
}

func TestPetService_AddPet_RequiresName(t *testing.T) {
	petService, _ := newPetService(t)

	pet, err := petService.AddPet(context.Background(), uuid.New(), usecase.PetInput{Species: "cat"})
	assert.Nil(t, pet)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPetService_GetPet_ForeignPet(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	pet := &entity.Pet{ID: uuid.New(), UserID: uuid.New(), Name: "Milo"}

	petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	found, err := petService.GetPet(ctx, uuid.New(), pet.ID)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrPetOwnershipViolation)
}

func TestPetService_GetPet_NotFound(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	petID := uuid.New()

	petRepo.EXPECT().FindByID(ctx, petID).Return(nil, repository.ErrPetNotFound)

	found, err := petService.GetPet(ctx, uuid.New(), petID)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestPetService_UpdatePet_PartialFields(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	userID := uuid.New()
	pet := &entity.Pet{ID: uuid.New(), UserID: userID, Name: "Milo", Species: "dog", Age: 3}

	petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	petRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

	updated, err := petService.UpdatePet(ctx, userID, pet.ID, usecase.PetInput{Age: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Age)
	assert.Equal(t, "Milo", updated.Name)
	assert.Equal(t, "dog", updated.Species)
}

func TestPetService_RemovePet_Success(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	userID := uuid.New()
	pet := &entity.Pet{ID: uuid.New(), UserID: userID, Name: "Milo"}

	petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	petRepo.EXPECT().Delete(ctx, pet.ID).Return(nil)

	err := petService.RemovePet(ctx, userID, pet.ID)
	require.NoError(t, err)
}

func TestPetService_ListPets(t *testing.T) {
	petService, petRepo := newPetService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Pet{
		{ID: uuid.New(), UserID: userID, Name: "Milo"},
		{ID: uuid.New(), UserID: userID, Name: "Luna"},
	}

	petRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	pets, err := petService.ListPets(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, pets)
}
