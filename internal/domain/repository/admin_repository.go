// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pinesvet/internal/domain/entity"
)

// ErrAdminCredentialNotFound is returned when no admin credential row exists.
var ErrAdminCredentialNotFound = errors.New("admin credential not found")

// AdminRepository defines the operations for back-office credential and
// activity persistence.
type AdminRepository interface {
	// FindCredential retrieves the stored back-office credential, if any.
	FindCredential(ctx context.Context) (*entity.AdminCredential, error)

	// SaveCredential inserts or replaces the back-office credential.
	SaveCredential(ctx context.Context, credential *entity.AdminCredential) error

	// RecordActivity appends an entry to the back-office activity log.
	RecordActivity(ctx context.Context, activity *entity.AdminActivity) error

	// ListActivity retrieves activity entries recorded within [from, to),
	// newest first.
	ListActivity(ctx context.Context, from, to time.Time, limit int) ([]*entity.AdminActivity, error)
}
