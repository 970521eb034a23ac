package port

import (
	"context"
	"time"
)

// Cache is the minimal key-value cache contract used by the application.
// Implementations must be concurrency-safe; misses are signalled with ErrMiss
// so callers can tell them apart from transport errors.
type Cache interface {
	// Get fetches the value for key, returning ErrMiss when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with the provided TTL. Zero or negative TTL
	// means no expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Close releases any resources held by the cache.
	Close() error
}

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }
