package service

import (
	"context"

	"shopzone/internal/model"
)

// CatalogService defines operations for product and category management.
type CatalogService interface {
	// ListProducts retrieves all products with their categories resolved.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// CreateProduct validates and creates a new product.
	CreateProduct(ctx context.Context, params model.ProductParams) (*model.Product, error)

	// UpdateProduct applies a partial update to a product.
	UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) (*model.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// CreateCategory validates and creates a new category.
	CreateCategory(ctx context.Context, params model.CategoryParams) (*model.Category, error)

	// UpdateCategory applies a partial update to a category.
	UpdateCategory(ctx context.Context, id string, updates model.CategoryUpdate) (*model.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error
}

// AuthService defines sign-up, login and session operations. Returned
// users never carry the password field.
type AuthService interface {
	// SignUp registers a new user and opens a session for them.
	SignUp(ctx context.Context, email, password string) (*model.User, error)

	// Login authenticates a user and opens a session for them.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// Logout clears the session slot.
	Logout(ctx context.Context) error

	// CurrentUser returns the user in the session slot, or nil.
	CurrentUser(ctx context.Context) (*model.User, error)
}

// CartService defines operations on a user's cart.
type CartService interface {
	// Items returns the user's cart with products resolved.
	Items(ctx context.Context, userID string) ([]model.CartItem, error)

	// Add puts quantity units of a product in the user's cart.
	Add(ctx context.Context, userID, productID string, quantity int) error

	// UpdateQuantity sets an item's quantity.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error

	// Remove deletes an item from the cart.
	Remove(ctx context.Context, userID, itemID string) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID string) error

	// TotalAmount sums price times quantity across the cart.
	TotalAmount(ctx context.Context, userID string) (int64, error)

	// TotalItems sums quantities across the cart.
	TotalItems(ctx context.Context, userID string) (int, error)
}

// OrderService defines checkout and order management.
type OrderService interface {
	// Checkout places an order from the user's cart contents.
	Checkout(ctx context.Context, userID, shippingAddress string) (*model.Order, error)

	// OrdersForUser returns the user's order history.
	OrdersForUser(ctx context.Context, userID string) ([]model.Order, error)

	// Get retrieves a single order by ID.
	Get(ctx context.Context, id string) (*model.Order, error)

	// All returns every order.
	All(ctx context.Context) ([]model.Order, error)

	// UpdateStatus sets an order's status.
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// AdminService defines the admin dashboard aggregation.
type AdminService interface {
	// DashboardStats aggregates storefront activity.
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// WishlistService defines per-user wishlist operations.
type WishlistService interface {
	// List returns the user's wishlist.
	List(ctx context.Context, userID string) ([]model.Product, error)

	// Add snapshots a product onto the user's wishlist.
	Add(ctx context.Context, userID, productID string) error

	// Remove drops a product from the user's wishlist.
	Remove(ctx context.Context, userID, productID string) error
}
