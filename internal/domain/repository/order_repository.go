// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// CreateBatch persists every order produced by one checkout, one row
	// per cart line.
	CreateBatch(ctx context.Context, orders []*entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders ordered by placement time,
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves all orders for the admin back-office.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// ListBetween retrieves orders placed within [from, to), for reports.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error)

	// UpdateStatus transitions an order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
