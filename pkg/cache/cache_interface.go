package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer (Redis in production, fakes in tests).
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error

	// Increment and Expire back the failed-login counter.
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// PageRevalidator drops cached page documents after content changes.
type PageRevalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}
