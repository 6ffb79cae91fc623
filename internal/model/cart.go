package model

import "time"

// CartItem is one product line in a user's cart. Carts are partitioned
// per user; items from other users are invisible to each other.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Product is resolved at read time and not persisted with the item.
	Product *Product `json:"product,omitempty"`
}
