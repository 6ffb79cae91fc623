package model

import "time"

// Order statuses known to the storefront UI. The store itself accepts
// any status string and does not validate transitions.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a placed order with its embedded line items.
// TotalAmount is computed by the caller at checkout time; the store
// does not recompute or verify it.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	TotalAmount     int64       `json:"total_amount"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	OrderItems      []OrderItem `json:"order_items"`
}

// OrderItem is a line item frozen at order time. Price is the unit
// price snapshot taken at checkout and is never re-derived from the
// current product price.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// OrderItemParams describes a line item to attach to an order. The
// store assigns the id, order id and timestamp.
type OrderItemParams struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderParams describes a new order. Items are attached separately.
type OrderParams struct {
	UserID          string `json:"user_id"`
	TotalAmount     int64  `json:"total_amount"`
	Status          string `json:"status"`
	ShippingAddress string `json:"shipping_address"`
}

// DashboardStats aggregates storefront activity for the admin panel.
type DashboardStats struct {
	TotalProducts    int64           `json:"total_products"`
	TotalOrders      int64           `json:"total_orders"`
	TotalRevenue     int64           `json:"total_revenue"`
	TotalUsers       int64           `json:"total_users"`
	LowStockProducts int64           `json:"low_stock_products"`
	RecentOrders     []Order         `json:"recent_orders"`
	TopProducts      []ProductSales  `json:"top_products"`
	MonthlyRevenue   []MonthlyAmount `json:"monthly_revenue"`
}

// ProductSales pairs a product with the number of units sold.
type ProductSales struct {
	Product Product `json:"product"`
	Sales   int     `json:"sales"`
}

// MonthlyAmount is revenue attributed to one calendar month.
type MonthlyAmount struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
