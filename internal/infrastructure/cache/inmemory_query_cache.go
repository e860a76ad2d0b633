package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 30 * time.Second
)

// InMemoryQueryCache implements QueryCache using in-memory storage.
// Suitable for single-instance deployments and testing.
type InMemoryQueryCache struct {
	entries    sync.Map // map[string]*cacheEntry
	defaultTTL time.Duration
	logger     *zap.Logger
	stopCh     chan struct{}
	stopped    int32

	// Stats for monitoring
	hits   int64
	misses int64
}

// cacheEntry wraps a cached value with expiration time
type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// isExpired checks if the cache entry has expired
func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryQueryCacheOption is a functional option for configuring the cache
type InMemoryQueryCacheOption func(*InMemoryQueryCache)

// WithInMemoryTTL sets the default TTL for entries stored without one
func WithInMemoryTTL(ttl time.Duration) InMemoryQueryCacheOption {
	return func(c *InMemoryQueryCache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryQueryCacheOption {
	return func(c *InMemoryQueryCache) {
		c.logger = logger
	}
}

// NewInMemoryQueryCache creates a new in-memory query cache
func NewInMemoryQueryCache(opts ...InMemoryQueryCacheOption) *InMemoryQueryCache {
	cache := &InMemoryQueryCache{
		defaultTTL: defaultTTL,
		logger:     zap.NewNop(),
		stopCh:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	// Start background cleanup goroutine
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a value from cache
func (c *InMemoryQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("query cache hit", zap.String("key", key))
			return entry.value, true, nil
		}
		// Expired, remove from cache
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("query cache miss", zap.String("key", key))
	return nil, false, nil
}

// Set stores a value in cache
func (c *InMemoryQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	c.entries.Store(key, &cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	c.logger.Debug("cached query result",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
	return nil
}

// Delete removes a value from cache
func (c *InMemoryQueryCache) Delete(ctx context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

// DeletePrefix removes all values whose key starts with prefix
func (c *InMemoryQueryCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.entries.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.entries.Delete(key)
		}
		return true
	})
	c.logger.Debug("invalidated query cache prefix", zap.String("prefix", prefix))
	return nil
}

// Close stops the background cleanup goroutine
func (c *InMemoryQueryCache) Close() error {
	// Only close once
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns hit and miss counters
func (c *InMemoryQueryCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// cleanupExpired periodically removes expired entries
func (c *InMemoryQueryCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*cacheEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}
