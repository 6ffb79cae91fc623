// Package storage provides the key-value blob backends the store
// persists its collections to. Each collection is one opaque value
// under a fixed key; backends never interpret the bytes.
package storage

import "context"

// KV is a minimal key-value blob store. Get reports presence
// explicitly so callers can distinguish an absent key from an empty
// value, which seeding depends on.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
