package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys so that a retried checkout or walk-in
// sale is not applied twice
type IdempotencyStore interface {
	// MarkProcessed claims key for ttl.
	// Returns true if the key was newly claimed, false if it was already taken.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key is currently claimed
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Release frees a key whose request failed so the client may retry it
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
