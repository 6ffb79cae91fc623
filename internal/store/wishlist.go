package store

import (
	"context"

	"shopzone/internal/model"
)

// Wishlist exposes per-user wishlists. Each user's list is its own
// key holding product snapshots taken when the product was added; a
// snapshot is immune to later edits of the product.
type Wishlist struct {
	store *Store
}

func wishlistKey(userID string) string {
	return wishlistKeyPrefix + userID
}

func (w *Wishlist) readList(ctx context.Context, userID string) ([]model.Product, error) {
	products := []model.Product{}
	if _, err := w.store.readBlob(ctx, wishlistKey(userID), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List returns the user's wishlist snapshots.
func (w *Wishlist) List(ctx context.Context, userID string) ([]model.Product, error) {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	return w.readList(ctx, userID)
}

// Add snapshots the product onto the user's wishlist. Adding a product
// already on the list is a no-op.
func (w *Wishlist) Add(ctx context.Context, userID string, product model.Product) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	products, err := w.readList(ctx, userID)
	if err != nil {
		return err
	}

	for _, existing := range products {
		if existing.ID == product.ID {
			return nil
		}
	}

	// The snapshot stands alone; drop the read-time join.
	product.Category = nil
	products = append(products, product)
	return w.store.writeBlob(ctx, wishlistKey(userID), products)
}

// Remove drops the product from the user's wishlist. Removing an
// absent product is a no-op.
func (w *Wishlist) Remove(ctx context.Context, userID, productID string) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	products, err := w.readList(ctx, userID)
	if err != nil {
		return err
	}

	filtered := products[:0]
	for _, product := range products {
		if product.ID != productID {
			filtered = append(filtered, product)
		}
	}

	return w.store.writeBlob(ctx, wishlistKey(userID), filtered)
}

// Contains reports whether the product is on the user's wishlist.
func (w *Wishlist) Contains(ctx context.Context, userID, productID string) (bool, error) {
	products, err := w.List(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, product := range products {
		if product.ID == productID {
			return true, nil
		}
	}
	return false, nil
}
