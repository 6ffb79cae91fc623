package service

import (
	"context"
	"fmt"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(st *store.Store, logger zerolog.Logger) CartService {
	return &cartService{
		store:  st,
		logger: logger.With().Str("service", "cart").Logger(),
	}
}

// Items returns the user's cart with products resolved.
func (s *cartService) Items(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := s.store.Cart.Items(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get cart items")
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

// Add puts quantity units of a product in the user's cart.
func (s *cartService) Add(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}

	if err := s.store.Cart.AddItem(ctx, userID, productID, quantity); err != nil {
		if err != model.ErrProductNotFound && err != model.ErrInvalidQuantity {
			s.logger.Error().Err(err).
				Str("user_id", userID).
				Str("product_id", productID).
				Msg("failed to add cart item")
		}
		return err
	}
	return nil
}

// UpdateQuantity sets an item's quantity.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if err := s.store.Cart.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		if err != model.ErrInvalidQuantity {
			s.logger.Error().Err(err).
				Str("user_id", userID).
				Str("item_id", itemID).
				Msg("failed to update cart quantity")
		}
		return err
	}
	return nil
}

// Remove deletes an item from the cart.
func (s *cartService) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.store.Cart.RemoveItem(ctx, userID, itemID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("item_id", itemID).
			Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear empties the user's cart.
func (s *cartService) Clear(ctx context.Context, userID string) error {
	if err := s.store.Cart.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// TotalAmount sums price times quantity across the cart. Items whose
// product no longer resolves contribute nothing.
func (s *cartService) TotalAmount(ctx context.Context, userID string) (int64, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, item := range items {
		if item.Product != nil {
			total += item.Product.Price * int64(item.Quantity)
		}
	}
	return total, nil
}

// TotalItems sums quantities across the cart.
func (s *cartService) TotalItems(ctx context.Context, userID string) (int, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}
