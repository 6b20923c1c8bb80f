// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the operations for appointment persistence.
type AppointmentRepository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByUser retrieves a user's appointments ordered by schedule time,
	// soonest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error)

	// FindByUserAndDateLabel retrieves a user's appointment with an identical
	// composite date string, used by the duplicate-booking guard. Cancelled
	// appointments do not count.
	FindByUserAndDateLabel(ctx context.Context, userID uuid.UUID, dateLabel string) (*entity.Appointment, error)

	// List retrieves all appointments ordered by schedule time, for the
	// admin back-office.
	List(ctx context.Context, limit, offset int) ([]*entity.Appointment, error)

	// ListBetween retrieves appointments scheduled within [from, to), for reports.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Appointment, error)

	// UpdateStatus transitions an appointment's persisted status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error

	// Delete removes an appointment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
