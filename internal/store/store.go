// Package store implements the storefront's embedded document store:
// five collections (products, categories, users, cart, orders) plus
// per-user wishlists, each persisted as one JSON blob in a key-value
// backend.
//
// Every operation is read-collection, mutate, write-collection. A
// store-wide mutex serialises operations so sibling writes cannot
// clobber each other within a process. Across processes sharing a
// backend the last writer of a blob still wins; the blob layout is the
// contract, not a transaction log.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"shopzone/internal/model"
	"shopzone/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Storage keys. The shopzone_ prefix is part of the persisted layout
// and must not change under existing data.
const (
	keyProducts    = "shopzone_products"
	keyCategories  = "shopzone_categories"
	keyUsers       = "shopzone_users"
	keyCurrentUser = "shopzone_current_user"
	keyCart        = "shopzone_cart"
	keyOrders      = "shopzone_orders"

	wishlistKeyPrefix = "wishlist_"
)

// Store is one storefront database instance. The session slot is per
// instance; embedders needing independent sessions construct
// independent stores over separate backends.
type Store struct {
	kv     storage.KV
	logger zerolog.Logger
	mu     sync.Mutex

	Products   *Products
	Categories *Categories
	Users      *Users
	Cart       *Cart
	Orders     *Orders
	Wishlist   *Wishlist
}

// New creates a store over the given backend.
func New(kv storage.KV, logger zerolog.Logger) *Store {
	s := &Store{
		kv:     kv,
		logger: logger.With().Str("component", "store").Logger(),
	}
	s.Products = &Products{store: s}
	s.Categories = &Categories{store: s}
	s.Users = &Users{store: s}
	s.Cart = &Cart{store: s}
	s.Orders = &Orders{store: s}
	s.Wishlist = &Wishlist{store: s}
	return s
}

// Init seeds categories and products when their collections are
// entirely absent, and ensures the users and orders collections exist.
// Idempotent: a second call against the same backend changes nothing.
func (s *Store) Init(ctx context.Context, categories []model.Category, products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.seedIfAbsent(ctx, keyCategories, categories); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, keyProducts, products); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, keyUsers, []model.User{}); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, keyOrders, []model.Order{}); err != nil {
		return err
	}

	s.logger.Info().Msg("store initialised")
	return nil
}

func (s *Store) seedIfAbsent(ctx context.Context, key string, value any) error {
	_, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", key, err)
	}
	if ok {
		return nil
	}
	return s.writeBlob(ctx, key, value)
}

// readBlob decodes the blob at key into v. Reports whether the key
// existed; an absent key leaves v untouched.
func (s *Store) readBlob(ctx context.Context, key string, v any) (bool, error) {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("corrupt collection blob")
		return false, fmt.Errorf("corrupt collection %s: %w", key, err)
	}
	return true, nil
}

// writeBlob encodes v and stores it under key, replacing the whole
// collection.
func (s *Store) writeBlob(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// generateID returns a fresh random v4 identifier.
func generateID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
