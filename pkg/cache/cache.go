package cache

import (
	"context"
	"time"
)

// Store is the cache backend contract: opaque byte blobs behind string keys
// with absolute expiration. Callers must treat every error as a miss; a
// broken cache degrades reads to the database, it never fails a request.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
