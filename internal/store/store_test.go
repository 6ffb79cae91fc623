package store

import (
	"context"
	"testing"
	"time"

	"shopzone/internal/model"
	"shopzone/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store over a fresh in-memory backend, seeded
// with two categories and two products.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New(storage.NewMemory(), zerolog.Nop())
	require.NoError(t, s.Init(context.Background(), testCategories(), testProducts()))
	return s
}

func testCategories() []model.Category {
	ts := time.Now().UTC()
	return []model.Category{
		{ID: "cat-1", Name: "Electronics", Description: "Gadgets", CreatedAt: ts},
		{ID: "cat-2", Name: "Books", Description: "Reading", CreatedAt: ts},
	}
}

func testProducts() []model.Product {
	ts := time.Now().UTC()
	return []model.Product{
		{ID: "prod-1", Name: "Phone", Price: 134900, CategoryID: "cat-1", StockQuantity: 25, CreatedAt: ts, UpdatedAt: ts},
		{ID: "prod-2", Name: "Novel", Price: 399, CategoryID: "cat-2", StockQuantity: 100, CreatedAt: ts, UpdatedAt: ts},
	}
}

func TestInit_Idempotent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := New(kv, zerolog.Nop())

	require.NoError(t, s.Init(ctx, testCategories(), testProducts()))

	// Mutate the seeded state, then re-init.
	created, err := s.Products.Create(ctx, model.ProductParams{Name: "Extra", Price: 10, CategoryID: "cat-1"})
	require.NoError(t, err)

	s2 := New(kv, zerolog.Nop())
	require.NoError(t, s2.Init(ctx, testCategories(), testProducts()))

	products, err := s2.Products.All(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3, "re-initialisation must not reset the collection")

	got, err := s2.Products.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Extra", got.Name)
}

func TestInit_EnsuresEmptyCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	count, err := s.Users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	orders, err := s.Orders.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := generateID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
