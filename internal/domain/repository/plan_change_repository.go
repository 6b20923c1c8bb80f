// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanChangeRepository defines the operations for care-plan history.
type PlanChangeRepository interface {
	// Record appends one entry to a user's plan history.
	Record(ctx context.Context, change *entity.PlanChange) error

	// FindByUser retrieves a user's plan history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PlanChange, error)
}
