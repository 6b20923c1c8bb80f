// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for slot persistence.
var (
	// ErrTimeSlotNotFound is returned when a catalog slot is not found.
	ErrTimeSlotNotFound = errors.New("time slot not found")
	// ErrSlotTaken is returned when the (slot, date) pair is already claimed.
	ErrSlotTaken = errors.New("slot already reserved for this date")
	// ErrReservationNotFound is returned when a reservation is not found.
	ErrReservationNotFound = errors.New("slot reservation not found")
)

// TimeSlotRepository defines the operations for the global slot catalog.
type TimeSlotRepository interface {
	// Create adds a slot to the catalog.
	Create(ctx context.Context, slot *entity.TimeSlot) error

	// FindByID retrieves a catalog slot by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error)

	// List retrieves the full catalog in storage order; callers sort by
	// parsed time of day at the read boundary.
	List(ctx context.Context) ([]*entity.TimeSlot, error)

	// Delete removes a slot from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationRepository defines the operations for slot reservations.
type ReservationRepository interface {
	// Claim atomically inserts a reservation for the (slot, date) pair.
	// It returns ErrSlotTaken when another reservation already holds the
	// pair, regardless of which user holds it.
	Claim(ctx context.Context, reservation *entity.SlotReservation) error

	// FindBySlotAndDate retrieves the reservation holding a (slot, date) pair.
	FindBySlotAndDate(ctx context.Context, slotID uuid.UUID, date string) (*entity.SlotReservation, error)

	// ListByDate retrieves all reservations for a calendar date, so the
	// storefront can grey out taken slots.
	ListByDate(ctx context.Context, date string) ([]*entity.SlotReservation, error)

	// ReleaseByAppointment frees the reservation owned by an appointment,
	// used when a booking is cancelled.
	ReleaseByAppointment(ctx context.Context, appointmentID uuid.UUID) error
}
