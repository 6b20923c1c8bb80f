// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus is a display-only classification derived from the stock count.
// It is never persisted.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

// lowStockThreshold is the stock count at or below which a product is
// reported as Low Stock.
const lowStockThreshold = 20

// Product is one entry in the admin-managed shop catalog.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the product.
	Name        string    `json:"name"`        // Display name.
	Category    string    `json:"category"`    // Catalog category, e.g. "Food", "Toys".
	Description string    `json:"description"` // Free-text description.
	Price       int64     `json:"price"`       // Unit price in whole pesos.
	Stock       int       `json:"stock"`       // Units on hand.
	ImageURL    string    `json:"image_url"`   // Product image location.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// StockStatus derives the display status from the current stock count.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockStatusOutOfStock
	case p.Stock <= lowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
