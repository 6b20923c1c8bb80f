// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents a customer's registered pet.
type Pet struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the pet.
	UserID    uuid.UUID `json:"user_id"`    // The owning customer.
	Name      string    `json:"name"`       // The pet's name.
	Species   string    `json:"species"`    // Dog, cat, etc.
	Breed     string    `json:"breed"`      // Breed, free text.
	Age       int       `json:"age"`        // Age in years.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
