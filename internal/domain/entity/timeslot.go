// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is one entry in the global, admin-managed catalog of bookable
// times of day. Slots are independent of any calendar date.
type TimeSlot struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the slot.
	Label     string    `json:"label"`      // Human-readable time of day, e.g. "9:00 AM".
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this slot was added to the catalog.
}

// SlotReservation binds a catalog slot to a specific calendar date and user,
// marking that (slot, date) combination unavailable to everyone else.
// A unique index on (slot_id, date) makes the claim atomic: the loser of a
// concurrent booking race receives a slot-unavailable error.
type SlotReservation struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for the reservation.
	SlotID        uuid.UUID `json:"slot_id"`        // The claimed catalog slot.
	Date          string    `json:"date"`           // Calendar date key, "2006-01-02".
	UserID        uuid.UUID `json:"user_id"`        // The customer holding the reservation.
	AppointmentID uuid.UUID `json:"appointment_id"` // The appointment that owns this claim.
	BookedAt      time.Time `json:"booked_at"`      // Timestamp of when the slot was claimed.
}
