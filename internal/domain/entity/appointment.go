// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of an appointment.
// Only Pending, Confirmed and Cancelled are ever persisted; Concluded is a
// read-time derivation for confirmed appointments whose date has passed.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusConcluded AppointmentStatus = "Concluded"
)

// Appointment represents a booked clinic visit for a pet.
type Appointment struct {
	ID            uuid.UUID         `json:"id"`             // The unique identifier for the appointment.
	UserID        uuid.UUID         `json:"user_id"`        // The booking customer.
	PetID         uuid.UUID         `json:"pet_id"`         // The pet the visit is for.
	PetName       string            `json:"pet_name"`       // Denormalized pet name for display and reports.
	Service       string            `json:"service"`        // Service name, e.g. "Wellness Exam".
	Category      string            `json:"category"`       // Service category, e.g. "Consultation", "Grooming".
	DateLabel     string            `json:"date"`           // Composite display string, "Jan 2, 2006, 3:04 PM".
	ScheduledAt   time.Time         `json:"scheduled_at"`   // Parsed schedule time used for ordering and derivation.
	Status        AppointmentStatus `json:"status"`         // Persisted state: Pending, Confirmed or Cancelled.
	Price         int64             `json:"price"`          // Service price in whole pesos.
	Duration      string            `json:"duration"`       // Human-readable duration, e.g. "45 mins".
	PaymentMethod string            `json:"payment_method"` // Chosen payment method.
	CreatedAt     time.Time         `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time         `json:"updated_at"`     // Timestamp of the last modification.
}
