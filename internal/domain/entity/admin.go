// Package entity contains the core business objects of the project.
package entity

import "time"

// AdminCredential holds the back-office login. There is a single credential
// record; an emergency fallback configured outside the database remains
// valid even after a custom credential is saved.
type AdminCredential struct {
	AdminID      string    // Login identifier.
	PasswordHash string    // bcrypt hash of the admin password.
	UpdatedAt    time.Time // Timestamp of the last credential change.
}

// AdminActivity is one line of the back-office audit trail.
type AdminActivity struct {
	ID         int64     // Auto-incrementing entry ID.
	AdminID    string    // The admin who performed the action.
	Action     string    // Short action verb, e.g. "appointment.confirm".
	Detail     string    // Free-form detail about the affected record.
	OccurredAt time.Time // When the action happened.
}

// AdminSession is a server-side back-office session stored with a TTL.
type AdminSession struct {
	Token     string    // Opaque session token handed to the client.
	AdminID   string    // The admin who owns the session.
	Emergency bool      // Whether the session was opened with the emergency credentials.
	CreatedAt time.Time // When the session was opened.
}
