package resultcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrFailedToParseRedisConnString indicates an invalid Redis URL.
	ErrFailedToParseRedisConnString = errors.New("resultcache: failed to parse redis connection string")

	// ErrRedisNotReady indicates the Redis server did not answer pings within
	// the configured retry budget.
	ErrRedisNotReady = errors.New("resultcache: redis did not become ready within the given time period")
)

// RedisConfig holds Redis connection parameters with environment variable
// mapping, for sharing cached results across application instances.
type RedisConfig struct {
	ConnectionURL  string        `env:"SEARCH_CACHE_REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"SEARCH_CACHE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"SEARCH_CACHE_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"SEARCH_CACHE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// ConnectRedis establishes a Redis connection and verifies it with a ping,
// retrying up to RetryAttempts times.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// RedisStore is a Redis-backed Store. TTL handling is delegated to Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client as a Store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves a cached value. Missing keys report ErrCacheMiss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value under key with the given TTL. A non-positive ttl means
// the entry never expires.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes an entry. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
