package resultcache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/resultcache"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		_, err := store.Get(ctx, "unknown")
		assert.ErrorIs(t, err, resultcache.ErrCacheMiss)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Nanosecond))

		time.Sleep(5 * time.Millisecond)
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, resultcache.ErrCacheMiss)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

		_, err := store.Get(ctx, "k")
		assert.NoError(t, err)
	})

	t.Run("lru eviction at capacity", func(t *testing.T) {
		store := resultcache.NewMemoryStore(2)
		require.NoError(t, store.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, store.Set(ctx, "b", []byte("2"), 0))

		// Touch "a" so "b" becomes the eviction candidate.
		_, err := store.Get(ctx, "a")
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "c", []byte("3"), 0))
		assert.Equal(t, 2, store.Len())

		_, err = store.Get(ctx, "b")
		assert.ErrorIs(t, err, resultcache.ErrCacheMiss)
		_, err = store.Get(ctx, "a")
		assert.NoError(t, err)
	})

	t.Run("overwrite updates value and ttl", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))
		require.NoError(t, store.Set(ctx, "k", []byte("new"), time.Hour))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), value)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := resultcache.NewMemoryStore(10)
		require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
		require.NoError(t, store.Delete(ctx, "k"))
		require.NoError(t, store.Delete(ctx, "k"))

		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, resultcache.ErrCacheMiss)
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := resultcache.NewMemoryStore(64)

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := range 100 {
					key := fmt.Sprintf("k-%d-%d", i, j%10)
					_ = store.Set(ctx, key, []byte("v"), time.Minute)
					_, _ = store.Get(ctx, key)
				}
			}(i)
		}
		wg.Wait()
	})
}

func TestKey(t *testing.T) {
	body := []byte(`{"query":{"match_all":{}}}`)

	assert.Equal(t, resultcache.Key("content", body), resultcache.Key("content", body))
	assert.NotEqual(t, resultcache.Key("content", body), resultcache.Key("users", body))
	assert.NotEqual(t, resultcache.Key("content", body), resultcache.Key("content", []byte(`{}`)))
}
