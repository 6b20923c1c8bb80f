// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a shop order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusReceived  OrderStatus = "Received"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is a single product line purchased at checkout. Checkout creates one
// order per cart line in a single transaction.
type Order struct {
	ID          uuid.UUID   `json:"id"`           // The unique identifier for the order.
	UserID      uuid.UUID   `json:"user_id"`      // The purchasing customer.
	ProductID   uuid.UUID   `json:"product_id"`   // The ordered product.
	ProductName string      `json:"product_name"` // Denormalized product name for display.
	Quantity    int         `json:"quantity"`     // Units ordered.
	UnitPrice   int64       `json:"price"`        // Price per unit actually charged, whole pesos.
	Status      OrderStatus `json:"status"`       // Current lifecycle state.
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp of when the order was placed.
	UpdatedAt   time.Time   `json:"updated_at"`   // Timestamp of the last modification.
}
