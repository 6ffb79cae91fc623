package service

import (
	"context"
	"fmt"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(st *store.Store, logger zerolog.Logger) CatalogService {
	return &catalogService{
		store:  st,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts retrieves all products with their categories resolved.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.Products.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.store.Products.ByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// CreateProduct validates and creates a new product.
func (s *catalogService) CreateProduct(ctx context.Context, params model.ProductParams) (*model.Product, error) {
	if err := validateProductParams(params); err != nil {
		return nil, err
	}

	product, err := s.store.Products.Create(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// UpdateProduct applies a partial update to a product.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) (*model.Product, error) {
	if updates.Name != nil && *updates.Name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if updates.Price != nil && *updates.Price <= 0 {
		return nil, fmt.Errorf("product price must be positive")
	}
	if updates.StockQuantity != nil && *updates.StockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}

	product, err := s.store.Products.Update(ctx, id, updates)
	if err != nil {
		if err != model.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		}
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.Products.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// ListCategories retrieves all categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.Categories.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory validates and creates a new category.
func (s *catalogService) CreateCategory(ctx context.Context, params model.CategoryParams) (*model.Category, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category, err := s.store.Categories.Create(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

// UpdateCategory applies a partial update to a category.
func (s *catalogService) UpdateCategory(ctx context.Context, id string, updates model.CategoryUpdate) (*model.Category, error) {
	if updates.Name != nil && *updates.Name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	category, err := s.store.Categories.Update(ctx, id, updates)
	if err != nil {
		if err != model.ErrCategoryNotFound {
			s.logger.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.Categories.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func validateProductParams(params model.ProductParams) error {
	if params.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if params.Price <= 0 {
		return fmt.Errorf("product price must be positive")
	}
	if params.StockQuantity < 0 {
		return fmt.Errorf("stock quantity cannot be negative")
	}
	return nil
}
