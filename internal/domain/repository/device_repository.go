// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations for push device persistence.
type DeviceRepository interface {
	// Upsert registers a device token for a user or refreshes the existing
	// registration for the same token.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all registered devices for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteByToken removes a registration whose token FCM reported as stale.
	DeleteByToken(ctx context.Context, token string) error
}
