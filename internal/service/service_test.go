package service

import (
	"context"
	"testing"
	"time"

	"shopzone/internal/model"
	"shopzone/internal/storage"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newStore returns a memory-backed store seeded with two categories
// and two products for service tests.
func newStore(t *testing.T) *store.Store {
	t.Helper()

	ts := time.Now().UTC()
	categories := []model.Category{
		{ID: "cat-1", Name: "Electronics", CreatedAt: ts},
		{ID: "cat-2", Name: "Books", CreatedAt: ts},
	}
	products := []model.Product{
		{ID: "prod-1", Name: "Phone", Price: 134900, CategoryID: "cat-1", StockQuantity: 25, CreatedAt: ts, UpdatedAt: ts},
		{ID: "prod-2", Name: "Novel", Price: 399, CategoryID: "cat-2", StockQuantity: 100, CreatedAt: ts, UpdatedAt: ts},
	}

	s := store.New(storage.NewMemory(), zerolog.Nop())
	require.NoError(t, s.Init(context.Background(), categories, products))
	return s
}
