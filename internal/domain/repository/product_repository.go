// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// would push the quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the operations for shop product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves multiple products keyed by ID. Missing IDs are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// List retrieves the catalog ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DecrementStock subtracts quantity from a product's stock only when
	// enough remains, returning ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
