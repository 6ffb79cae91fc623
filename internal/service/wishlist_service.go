package service

import (
	"context"
	"fmt"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(st *store.Store, logger zerolog.Logger) WishlistService {
	return &wishlistService{
		store:  st,
		logger: logger.With().Str("service", "wishlist").Logger(),
	}
}

// List returns the user's wishlist.
func (s *wishlistService) List(ctx context.Context, userID string) ([]model.Product, error) {
	products, err := s.store.Wishlist.List(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list wishlist")
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	return products, nil
}

// Add snapshots a product onto the user's wishlist. Fails with
// ErrProductNotFound when the product does not resolve.
func (s *wishlistService) Add(ctx context.Context, userID, productID string) error {
	product, err := s.store.Products.ByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to resolve product")
		return fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if err := s.store.Wishlist.Add(ctx, userID, *product); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to add wishlist item")
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

// Remove drops a product from the user's wishlist.
func (s *wishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.store.Wishlist.Remove(ctx, userID, productID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to remove wishlist item")
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}
