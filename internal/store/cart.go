package store

import (
	"context"

	"shopzone/internal/model"
)

// Cart exposes per-user cart lists. The cart collection is one blob
// mapping user id to that user's items; users never see each other's
// lists.
type Cart struct {
	store *Store
}

func (c *Cart) readAll(ctx context.Context) (map[string][]model.CartItem, error) {
	cart := map[string][]model.CartItem{}
	if _, err := c.store.readBlob(ctx, keyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Items returns the user's cart with each item's product resolved at
// read time. An item whose product has since been deleted keeps a nil
// product.
func (c *Cart) Items(ctx context.Context, userID string) ([]model.CartItem, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cart, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	items := cart[userID]
	if len(items) == 0 {
		return []model.CartItem{}, nil
	}

	products, err := c.store.Products.readAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err = c.store.Products.join(ctx, products)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]model.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if p, ok := byID[out[i].ProductID]; ok {
			product := p
			out[i].Product = &product
		}
	}
	return out, nil
}

// AddItem puts quantity units of the product in the user's cart. If an
// item for that product already exists its quantity is incremented by
// the requested amount; otherwise a new item is appended. Fails with
// ErrProductNotFound when the product does not resolve.
func (c *Cart) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	products, err := c.store.Products.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, p := range products {
		if p.ID == productID {
			found = true
			break
		}
	}
	if !found {
		return model.ErrProductNotFound
	}

	cart, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	items := cart[userID]
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ID:        generateID(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: now(),
		})
	}
	cart[userID] = items

	if err := c.store.writeBlob(ctx, keyCart, cart); err != nil {
		return err
	}

	c.store.logger.Debug().
		Str("user_id", userID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("cart item added")
	return nil
}

// UpdateQuantity sets the quantity of an item in the user's cart.
// Missing user lists and unknown item ids are silent no-ops; a
// quantity below one is rejected with ErrInvalidQuantity.
func (c *Cart) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cart, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	items, ok := cart[userID]
	if !ok {
		return nil
	}

	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			cart[userID] = items
			return c.store.writeBlob(ctx, keyCart, cart)
		}
	}
	return nil
}

// RemoveItem deletes an item from the user's cart. Missing user lists
// and unknown item ids are silent no-ops.
func (c *Cart) RemoveItem(ctx context.Context, userID, itemID string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cart, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	items, ok := cart[userID]
	if !ok {
		return nil
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	cart[userID] = filtered

	return c.store.writeBlob(ctx, keyCart, cart)
}

// Clear empties the user's cart, creating the list if it was absent.
func (c *Cart) Clear(ctx context.Context, userID string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cart, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	cart[userID] = []model.CartItem{}
	return c.store.writeBlob(ctx, keyCart, cart)
}
