// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for shopping cart persistence.
type CartRepository interface {
	// Upsert adds a product line to a user's cart or replaces the existing
	// line for the same product.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// FindByUser retrieves all cart lines for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// Remove deletes one product line from a user's cart.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties a user's cart, used after checkout.
	Clear(ctx context.Context, userID uuid.UUID) error
}
