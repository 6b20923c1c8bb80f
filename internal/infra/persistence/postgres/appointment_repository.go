// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the repository.AppointmentRepository interface using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or pet reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required appointment information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByID retrieves an appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// FindByUser retrieves a user's appointments ordered by schedule time, soonest first.
func (repo *appointmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by user")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// FindByUserAndDateLabel retrieves a user's non-cancelled appointment with an
// identical composite date string.
func (repo *appointmentRepository) FindByUserAndDateLabel(ctx context.Context, userID uuid.UUID, dateLabel string) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date_label = ? AND status <> ?", userID, dateLabel, string(entity.AppointmentStatusCancelled)).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by user and date")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// List retrieves all appointments ordered by schedule time, for the admin back-office.
func (repo *appointmentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	query := repo.db.WithContext(ctx).Order("scheduled_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// ListBetween retrieves appointments scheduled within [from, to), for reports.
func (repo *appointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments between dates")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// UpdateStatus transitions an appointment's persisted status.
func (repo *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update appointment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// Delete removes an appointment by its ID.
func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete appointment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// toAppointmentDomain converts a GORM AppointmentModel to a domain entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:            data.ID,
		UserID:        data.UserID,
		PetID:         data.PetID,
		PetName:       data.PetName,
		Service:       data.Service,
		Category:      data.Category,
		DateLabel:     data.DateLabel,
		ScheduledAt:   data.ScheduledAt,
		Status:        entity.AppointmentStatus(data.Status),
		Price:         data.Price,
		Duration:      data.Duration,
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toAppointmentDomainSlice maps a slice of models to domain entities.
func toAppointmentDomainSlice(models []*model.AppointmentModel) []*entity.Appointment {
	appointments := make([]*entity.Appointment, 0, len(models))
	for _, appointmentM := range models {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM model.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PetID:         data.PetID,
		PetName:       data.PetName,
		Service:       data.Service,
		Category:      data.Category,
		DateLabel:     data.DateLabel,
		ScheduledAt:   data.ScheduledAt,
		Status:        string(data.Status),
		Price:         data.Price,
		Duration:      data.Duration,
		PaymentMethod: data.PaymentMethod,
	}
}
