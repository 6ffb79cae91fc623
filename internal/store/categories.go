package store

import (
	"context"

	"shopzone/internal/model"
)

// Categories exposes the category collection.
type Categories struct {
	store *Store
}

func (c *Categories) readAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if _, err := c.store.readBlob(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// All returns every category in storage order.
func (c *Categories) All(ctx context.Context) ([]model.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	return c.readAll(ctx)
}

// ByID returns the category with the given id, or nil if absent.
func (c *Categories) ByID(ctx context.Context, id string) (*model.Category, error) {
	categories, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// Create appends a new category with a generated id and timestamp.
func (c *Categories) Create(ctx context.Context, params model.CategoryParams) (*model.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	category := model.Category{
		ID:          generateID(),
		Name:        params.Name,
		Description: params.Description,
		CreatedAt:   now(),
	}

	categories = append(categories, category)
	if err := c.store.writeBlob(ctx, keyCategories, categories); err != nil {
		return nil, err
	}

	c.store.logger.Debug().Str("category_id", category.ID).Msg("category created")
	return &category, nil
}

// Update merges the given fields into the category. Fails with
// ErrCategoryNotFound if the id does not resolve. Categories carry no
// update timestamp.
func (c *Categories) Update(ctx context.Context, id string, updates model.CategoryUpdate) (*model.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		if updates.Name != nil {
			categories[i].Name = *updates.Name
		}
		if updates.Description != nil {
			categories[i].Description = *updates.Description
		}
		if err := c.store.writeBlob(ctx, keyCategories, categories); err != nil {
			return nil, err
		}
		updated := categories[i]
		return &updated, nil
	}

	return nil, model.ErrCategoryNotFound
}

// Delete removes the category with the given id. Products referencing
// it keep their dangling category_id; their read-time join simply
// yields no category. Removing an absent id is a no-op.
func (c *Categories) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	filtered := categories[:0]
	for _, category := range categories {
		if category.ID != id {
			filtered = append(filtered, category)
		}
	}

	return c.store.writeBlob(ctx, keyCategories, filtered)
}
