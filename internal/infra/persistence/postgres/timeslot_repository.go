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

// timeSlotRepository implements the repository.TimeSlotRepository interface using GORM.
type timeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository is the constructor for timeSlotRepository.
func NewTimeSlotRepository(db *gorm.DB) repository.TimeSlotRepository {
	return &timeSlotRepository{
		db: db,
	}
}

// Create adds a slot to the catalog.
func (repo *timeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	slotM := fromTimeSlotDomain(slot)

	if err := repo.db.WithContext(ctx).Create(slotM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("slot label already exists")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create time slot")
	}

	slot.ID = slotM.ID
	slot.CreatedAt = slotM.CreatedAt

	return nil
}

// FindByID retrieves a catalog slot by its unique ID.
func (repo *timeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	var slotM model.TimeSlotModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimeSlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find time slot by id")
	}

	return toTimeSlotDomain(&slotM), nil
}

// List retrieves the full catalog in storage order.
func (repo *timeSlotRepository) List(ctx context.Context) ([]*entity.TimeSlot, error) {
	var slotModels []*model.TimeSlotModel

	if err := repo.db.WithContext(ctx).
		Find(&slotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list time slots")
	}

	slots := make([]*entity.TimeSlot, 0, len(slotModels))
	for _, slotM := range slotModels {
		slots = append(slots, toTimeSlotDomain(slotM))
	}

	return slots, nil
}

// Delete removes a slot from the catalog.
func (repo *timeSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TimeSlotModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete time slot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimeSlotNotFound
	}

	return nil
}

// toTimeSlotDomain converts a GORM TimeSlotModel to a domain entity.
func toTimeSlotDomain(data *model.TimeSlotModel) *entity.TimeSlot {
	if data == nil {
		return nil
	}

	return &entity.TimeSlot{
		ID:        data.ID,
		Label:     data.Label,
		CreatedAt: data.CreatedAt,
	}
}

// fromTimeSlotDomain converts a domain TimeSlot entity to a GORM model.
func fromTimeSlotDomain(data *entity.TimeSlot) *model.TimeSlotModel {
	if data == nil {
		return nil
	}

	return &model.TimeSlotModel{
		ID:    data.ID,
		Label: data.Label,
	}
}

// reservationRepository implements the repository.ReservationRepository interface using GORM.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// Claim atomically inserts a reservation for the (slot, date) pair. The
// unique index on (slot_id, date) decides the winner of a concurrent race;
// the loser's insert surfaces here as a unique constraint violation.
func (repo *reservationRepository) Claim(ctx context.Context, reservation *entity.SlotReservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlotTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid slot reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to claim slot reservation")
	}

	reservation.ID = reservationM.ID

	return nil
}

// FindBySlotAndDate retrieves the reservation holding a (slot, date) pair.
func (repo *reservationRepository) FindBySlotAndDate(ctx context.Context, slotID uuid.UUID, date string) (*entity.SlotReservation, error) {
	var reservationM model.SlotReservationModel

	if err := repo.db.WithContext(ctx).
		Where("slot_id = ? AND date = ?", slotID, date).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by slot and date")
	}

	return toReservationDomain(&reservationM), nil
}

// ListByDate retrieves all reservations for a calendar date.
func (repo *reservationRepository) ListByDate(ctx context.Context, date string) ([]*entity.SlotReservation, error) {
	var reservationModels []*model.SlotReservationModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by date")
	}

	reservations := make([]*entity.SlotReservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// ReleaseByAppointment frees the reservation owned by an appointment.
func (repo *reservationRepository) ReleaseByAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&model.SlotReservationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to release slot reservation")
	}

	return nil
}

// toReservationDomain converts a GORM SlotReservationModel to a domain entity.
func toReservationDomain(data *model.SlotReservationModel) *entity.SlotReservation {
	if data == nil {
		return nil
	}

	return &entity.SlotReservation{
		ID:            data.ID,
		SlotID:        data.SlotID,
		Date:          data.Date,
		UserID:        data.UserID,
		AppointmentID: data.AppointmentID,
		BookedAt:      data.BookedAt,
	}
}

// fromReservationDomain converts a domain SlotReservation entity to a GORM model.
func fromReservationDomain(data *entity.SlotReservation) *model.SlotReservationModel {
	if data == nil {
		return nil
	}

	return &model.SlotReservationModel{
		ID:            data.ID,
		SlotID:        data.SlotID,
		Date:          data.Date,
		UserID:        data.UserID,
		AppointmentID: data.AppointmentID,
		BookedAt:      data.BookedAt,
	}
}
