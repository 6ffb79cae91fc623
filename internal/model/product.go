package model

import "time"

// Product represents an item in the storefront catalogue.
// Price is an integer amount in the smallest currency unit.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	CategoryID    string    `json:"category_id"`
	ImageURL      string    `json:"image_url"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Category is resolved at read time from CategoryID and never
	// persisted with the product. Nil when the reference is dangling.
	Category *Category `json:"category,omitempty"`
}

// Category represents a flat product grouping. No hierarchy.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductParams describes a new product. The store assigns the id and
// timestamps.
type ProductParams struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	CategoryID    string `json:"category_id"`
	ImageURL      string `json:"image_url"`
	StockQuantity int    `json:"stock_quantity"`
}

// CategoryParams describes a new category.
type CategoryParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductUpdate carries a partial product update. Nil fields are left
// unchanged by the store.
type ProductUpdate struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Price         *int64  `json:"price,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	StockQuantity *int    `json:"stock_quantity,omitempty"`
}

// CategoryUpdate carries a partial category update.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
