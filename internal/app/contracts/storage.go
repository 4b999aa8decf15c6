package contracts

import (
	"context"
	"time"
)

// SessionStorage is the durable key/value store for persisted session
// records. Get returns an empty string for an absent key; absence is not an
// error. Writes are last-writer-wins with no transaction guarantee.
type SessionStorage interface {
	Set(ctx context.Context, key, value string, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
