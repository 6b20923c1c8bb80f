package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductView is a catalog product with display-only derived fields: the
// stock status and the price after the viewer's care-plan discount.
type ProductView struct {
	*entity.Product
	StockStatus     entity.StockStatus `json:"stock_status"`
	DiscountedPrice int64              `json:"discounted_price"`
	DiscountPercent int                `json:"discount_percent"`
}

// CartView is a customer's cart with its grand total.
type CartView struct {
	Items []*entity.CartItem `json:"items"`
	Total int64              `json:"total"`
}

// ProductInput carries the editable fields of a product (back-office).
type ProductInput struct {
	Name        string
	Category    string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
}

// ShopUsecase defines the interface for the storefront and order use cases.
type ShopUsecase interface {
	// ListProducts returns the catalog with stock status derived and prices
	// discounted for the viewing customer's plan.
	ListProducts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ProductView, error)

	// GetProduct returns one product with derived fields for the viewer.
	GetProduct(ctx context.Context, userID, productID uuid.UUID) (*ProductView, error)

	// AddToCart puts a product in the customer's cart, locking in the
	// discounted unit price at add time.
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// GetCart returns the customer's cart with its total.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// RemoveFromCart drops one product line from the cart.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error

	// Checkout converts every cart line into an order in one transaction,
	// decrementing stock conditionally; any shortfall aborts the whole batch.
	Checkout(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListOrders returns the customer's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns all orders for the back-office.
	ListAllOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// SetOrderStatus transitions an order from the back-office.
	SetOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error

	// CreateProduct adds a product to the catalog (back-office).
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a catalog product (back-office).
	UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog (back-office).
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}
