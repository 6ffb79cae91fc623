package service

import (
	"context"
	"fmt"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(st *store.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  st,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Checkout places an order from the user's cart contents: stock is
// decremented for every line all-or-nothing, the order is created
// pending with unit-price snapshots, and the cart is cleared.
func (s *orderService) Checkout(ctx context.Context, userID, shippingAddress string) (*model.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	items, err := s.store.Cart.Items(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	// Every cart line must still resolve to a product for its price
	// snapshot.
	demand := make(map[string]int, len(items))
	var total int64
	for _, item := range items {
		if item.Product == nil {
			s.logger.Warn().
				Str("user_id", userID).
				Str("product_id", item.ProductID).
				Msg("cart references missing product")
			return nil, model.ErrProductNotFound
		}
		demand[item.ProductID] += item.Quantity
		total += item.Product.Price * int64(item.Quantity)
	}

	if err := s.store.Products.DecrementStockBatch(ctx, demand); err != nil {
		if err != model.ErrInsufficientStock && err != model.ErrProductNotFound {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to decrement stock")
		}
		return nil, err
	}

	order, err := s.store.Orders.Create(ctx, model.OrderParams{
		UserID:          userID,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		ShippingAddress: shippingAddress,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	params := make([]model.OrderItemParams, len(items))
	for i, item := range items {
		params[i] = model.OrderItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		}
	}

	orderItems, err := s.store.Orders.AddItems(ctx, order.ID, params)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to attach order items")
		return nil, fmt.Errorf("failed to attach order items: %w", err)
	}
	order.OrderItems = orderItems

	if err := s.store.Cart.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart after checkout")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int64("total_amount", total).
		Int("item_count", len(orderItems)).
		Msg("order placed")

	return order, nil
}

// OrdersForUser returns the user's order history.
func (s *orderService) OrdersForUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.store.Orders.ByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// Get retrieves a single order by ID.
func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.store.Orders.ByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// All returns every order.
func (s *orderService) All(ctx context.Context) ([]model.Order, error) {
	orders, err := s.store.Orders.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets an order's status. Unknown order ids are a silent
// no-op, matching the store contract.
func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if status == "" {
		return fmt.Errorf("status is required")
	}

	if err := s.store.Orders.UpdateStatus(ctx, orderID, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().Str("order_id", orderID).Str("status", status).Msg("order status updated")
	return nil
}
