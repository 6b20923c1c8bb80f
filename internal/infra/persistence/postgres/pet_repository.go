// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements the repository.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

// Create persists a new pet.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// FindByID retrieves a pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

// FindByUser retrieves all pets owned by a user.
func (repo *petRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pets by user")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// Update modifies an existing pet.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", pet.ID).
		Updates(map[string]interface{}{
			"name":    petM.Name,
			"species": petM.Species,
			"breed":   petM.Breed,
			"age":     petM.Age,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// Delete removes a pet by its ID.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// toPetDomain converts a GORM PetModel to a domain entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Species:   data.Species,
		Breed:     data.Breed,
		Age:       data.Age,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPetDomain converts a domain Pet entity to a GORM model.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Name:    data.Name,
		Species: data.Species,
		Breed:   data.Breed,
		Age:     data.Age,
	}
}
