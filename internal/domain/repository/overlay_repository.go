// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"
)

// ErrOverlayNotFound is returned when no settings exist for a page.
var ErrOverlayNotFound = errors.New("overlay settings not found")

// OverlayRepository defines the operations for page overlay settings.
type OverlayRepository interface {
	// FindByPage retrieves the overlay settings for one portal page.
	FindByPage(ctx context.Context, page string) (*entity.OverlaySettings, error)

	// Save inserts or replaces the settings for a page.
	Save(ctx context.Context, settings *entity.OverlaySettings) error

	// List retrieves the settings of every configured page.
	List(ctx context.Context) ([]*entity.OverlaySettings, error)
}
