package store

import (
	"context"

	"shopzone/internal/model"
)

// Products exposes the product collection.
type Products struct {
	store *Store
}

func (p *Products) readAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if _, err := p.store.readBlob(ctx, keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// join resolves each product's category by id. A dangling category
// reference leaves the joined field nil; it is not an error.
func (p *Products) join(ctx context.Context, products []model.Product) ([]model.Product, error) {
	categories := []model.Category{}
	if _, err := p.store.readBlob(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}

	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for i := range products {
		if c, ok := byID[products[i].CategoryID]; ok {
			category := c
			products[i].Category = &category
		}
	}
	return products, nil
}

// All returns every product enriched with its resolved category.
func (p *Products) All(ctx context.Context) ([]model.Product, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return p.join(ctx, products)
}

// ByID returns the product with the given id, category joined, or nil
// if no such product exists.
func (p *Products) ByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := p.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Create appends a new product with a generated id and timestamps.
func (p *Products) Create(ctx context.Context, params model.ProductParams) (*model.Product, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return nil, err
	}

	ts := now()
	product := model.Product{
		ID:            generateID(),
		Name:          params.Name,
		Description:   params.Description,
		Price:         params.Price,
		CategoryID:    params.CategoryID,
		ImageURL:      params.ImageURL,
		StockQuantity: params.StockQuantity,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	products = append(products, product)
	if err := p.store.writeBlob(ctx, keyProducts, products); err != nil {
		return nil, err
	}

	p.store.logger.Debug().Str("product_id", product.ID).Msg("product created")
	return &product, nil
}

// Update merges the given fields into the product and refreshes its
// update timestamp. Fails with ErrProductNotFound if the id does not
// resolve.
func (p *Products) Update(ctx context.Context, id string, updates model.ProductUpdate) (*model.Product, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, model.ErrProductNotFound
	}

	product := &products[idx]
	if updates.Name != nil {
		product.Name = *updates.Name
	}
	if updates.Description != nil {
		product.Description = *updates.Description
	}
	if updates.Price != nil {
		product.Price = *updates.Price
	}
	if updates.CategoryID != nil {
		product.CategoryID = *updates.CategoryID
	}
	if updates.ImageURL != nil {
		product.ImageURL = *updates.ImageURL
	}
	if updates.StockQuantity != nil {
		product.StockQuantity = *updates.StockQuantity
	}
	product.UpdatedAt = now()

	if err := p.store.writeBlob(ctx, keyProducts, products); err != nil {
		return nil, err
	}

	updated := *product
	return &updated, nil
}

// Delete removes the product with the given id. Removing an absent id
// is a no-op.
func (p *Products) Delete(ctx context.Context, id string) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return err
	}

	filtered := products[:0]
	for _, product := range products {
		if product.ID != id {
			filtered = append(filtered, product)
		}
	}

	return p.store.writeBlob(ctx, keyProducts, filtered)
}

// DecrementStockBatch reduces several products' stock in one
// read-modify-write. All-or-nothing: if any product is missing or
// short on stock, nothing changes. Checkout relies on this so a failed
// placement never leaves a half-decremented catalogue.
func (p *Products) DecrementStockBatch(ctx context.Context, quantities map[string]int) error {
	for _, quantity := range quantities {
		if quantity < 1 {
			return model.ErrInvalidQuantity
		}
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(products))
	for i := range products {
		index[products[i].ID] = i
	}

	for id, quantity := range quantities {
		i, ok := index[id]
		if !ok {
			return model.ErrProductNotFound
		}
		if products[i].StockQuantity < quantity {
			return model.ErrInsufficientStock
		}
	}

	ts := now()
	for id, quantity := range quantities {
		i := index[id]
		products[i].StockQuantity -= quantity
		products[i].UpdatedAt = ts
	}

	return p.store.writeBlob(ctx, keyProducts, products)
}

// DecrementStock reduces a product's stock by quantity only if enough
// stock remains. Fails with ErrInsufficientStock otherwise, leaving the
// product unchanged.
func (p *Products) DecrementStock(ctx context.Context, id string, quantity int) (*model.Product, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	products, err := p.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		if products[i].StockQuantity < quantity {
			return nil, model.ErrInsufficientStock
		}
		products[i].StockQuantity -= quantity
		products[i].UpdatedAt = now()

		if err := p.store.writeBlob(ctx, keyProducts, products); err != nil {
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}

	return nil, model.ErrProductNotFound
}
