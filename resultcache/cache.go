package resultcache

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// ErrCacheMiss indicates the key is not present or has expired.
var ErrCacheMiss = errors.New("resultcache: cache miss")

// Store is the minimal contract the backend needs for result caching.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Key derives a cache key from the target index and the serialized query body.
func Key(index string, body []byte) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(index))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(body)
	return fmt.Sprintf("searchkit:result:%s:%x", index, h.Sum64())
}
