// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is an ephemeral line in a customer's cart. The unit price is
// recorded post care-plan discount, with the catalog price retained so the
// storefront can show the original struck through. Cart lines are cleared
// when an order is placed.
type CartItem struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for the cart line.
	UserID        uuid.UUID `json:"user_id"`        // The owning customer.
	ProductID     uuid.UUID `json:"product_id"`     // The product in the cart.
	Quantity      int       `json:"quantity"`       // Units requested.
	UnitPrice     int64     `json:"price"`          // Price per unit after plan discount, whole pesos.
	OriginalPrice int64     `json:"original_price"` // Catalog price per unit at the time of adding.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when the line was added.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}
