package usecase

import (
	"context"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotView is one bookable slot for a given date, with availability resolved
// against existing reservations.
type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Available bool      `json:"available"`
}

// BookingInput carries everything needed to book an appointment.
type BookingInput struct {
	UserID        uuid.UUID
	PetID         uuid.UUID
	SlotID        uuid.UUID
	Date          time.Time // Calendar day of the visit; time of day comes from the slot.
	Service       string
	Category      string
	Price         int64
	Duration      string
	PaymentMethod string
}

// BookingUsecase defines the interface for the appointment booking use cases.
type BookingUsecase interface {
	// ListSlots returns the slot catalog for a date, sorted by time of day,
	// with taken slots flagged unavailable.
	ListSlots(ctx context.Context, date time.Time) ([]SlotView, error)

	// BookAppointment books a visit: it validates the date, enforces the
	// one-appointment-per-date guard, and claims the slot atomically so a
	// concurrent booking of the same (slot, date) fails cleanly.
	BookAppointment(ctx context.Context, input BookingInput) (*entity.Appointment, error)

	// CancelAppointment cancels a customer's own appointment and frees its slot.
	CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error

	// ListUserAppointments returns a customer's appointments with display
	// statuses derived, after purging stale pending bookings whose date
	// passed without confirmation.
	ListUserAppointments(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error)

	// GenerateCheckInQR produces the check-in QR image for a confirmed
	// appointment owned by the user.
	GenerateCheckInQR(ctx context.Context, userID, appointmentID uuid.UUID) ([]byte, error)

	// AddSlot adds a slot to the global catalog (back-office).
	AddSlot(ctx context.Context, label string) (*entity.TimeSlot, error)

	// RemoveSlot removes a slot from the global catalog (back-office).
	RemoveSlot(ctx context.Context, slotID uuid.UUID) error

	// ListAppointments returns all appointments for the back-office.
	ListAppointments(ctx context.Context, limit, offset int) ([]*entity.Appointment, error)

	// SetAppointmentStatus transitions an appointment from the back-office
	// (confirm or cancel); cancelling frees the slot.
	SetAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) error

	// CheckIn resolves a scanned QR payload to the appointment it belongs to.
	CheckIn(ctx context.Context, qrData string) (*entity.Appointment, error)
}
