package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is not present.
var ErrMiss = errors.New("cache: key not found")

// Cache defines the interface for the lookup cache. Only distinct filter
// values go through it; aggregation results are always recomputed per
// request.
type Cache interface {
	// Get returns the cached value for a key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Health checks if the cache is reachable.
	Health(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}

// redisCache implements Cache using Redis
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL string
}

// NewRedisCache creates a new Redis-backed cache
func NewRedisCache(cfg RedisConfig, logger *slog.Logger) (Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		slog.String("addr", opts.Addr),
	)

	return &redisCache{
		client: client,
		logger: logger,
	}, nil
}

// Get returns the cached value for a key
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return data, nil
}

// Set stores a value under a key with a TTL
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}

	c.logger.Debug("cache key set",
		slog.String("key", key),
		slog.Duration("ttl", ttl),
	)

	return nil
}

// Health checks if Redis is healthy
func (c *redisCache) Health(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *redisCache) Close() error {
	c.logger.Info("closing Redis connection")
	return c.client.Close()
}
