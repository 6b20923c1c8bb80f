// Package entity contains the core business objects of the project.
package entity

import "time"

// OverlaySettings configures the promotional banner for one portal page.
// Settings were previously client-local; they are now server-managed so the
// admin's configuration reaches every visitor.
type OverlaySettings struct {
	Page      string    `json:"page"`       // Portal page the overlay applies to, e.g. "shop".
	Enabled   bool      `json:"enabled"`    // Whether the overlay is shown.
	Title     string    `json:"title"`      // Banner headline.
	Message   string    `json:"message"`    // Banner body text.
	ImageURL  string    `json:"image_url"`  // Optional banner image.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
