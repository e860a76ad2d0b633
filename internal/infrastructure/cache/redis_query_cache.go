package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQueryCache implements QueryCache using Redis. Suitable for
// deployments where multiple instances must share cached query results.
type RedisQueryCache struct {
	client     *redis.Client
	keyPrefix  string
	defaultTTL time.Duration
}

// RedisCacheConfig holds Redis connection configuration
type RedisCacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisQueryCache creates a new Redis-based query cache
func NewRedisQueryCache(cfg RedisCacheConfig) (*RedisQueryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &RedisQueryCache{
		client:     client,
		keyPrefix:  "query:",
		defaultTTL: ttl,
	}, nil
}

// NewRedisQueryCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisQueryCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisQueryCache {
	if keyPrefix == "" {
		keyPrefix = "query:"
	}
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &RedisQueryCache{
		client:     client,
		keyPrefix:  keyPrefix,
		defaultTTL: ttl,
	}
}

// Get retrieves a value from Redis
func (c *RedisQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached query: %w", err)
	}
	return value, true, nil
}

// Set stores a value in Redis with a TTL
func (c *RedisQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache query result: %w", err)
	}
	return nil
}

// Delete removes a single key from Redis
func (c *RedisQueryCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cached query: %w", err)
	}
	return nil
}

// DeletePrefix removes all keys with the given prefix using SCAN so that
// Redis is never blocked by a KEYS call.
func (c *RedisQueryCache) DeletePrefix(ctx context.Context, prefix string) error {
	pattern := c.keyPrefix + prefix + "*"
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate cached queries: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached queries: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate cached queries: %w", err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisQueryCache) Close() error {
	return c.client.Close()
}
