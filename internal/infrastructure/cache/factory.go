package cache

import (
	"fmt"

	"github.com/gescom/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// QueryCacheFactory creates query caches based on configuration
type QueryCacheFactory struct {
	cacheConfig config.CacheConfig
	redisConfig config.RedisConfig
	logger      *zap.Logger
}

// QueryCacheFactoryOption is a functional option for configuring the factory
type QueryCacheFactoryOption func(*QueryCacheFactory)

// WithFactoryLogger sets the logger for the factory
func WithFactoryLogger(logger *zap.Logger) QueryCacheFactoryOption {
	return func(f *QueryCacheFactory) {
		f.logger = logger
	}
}

// NewQueryCacheFactory creates a new factory
func NewQueryCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...QueryCacheFactoryOption) *QueryCacheFactory {
	f := &QueryCacheFactory{
		cacheConfig: cacheCfg,
		redisConfig: redisCfg,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed query cache
func (f *QueryCacheFactory) CreateRedisCache() (QueryCache, error) {
	cache, err := NewRedisQueryCache(RedisCacheConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
		TTL:      f.cacheConfig.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis query cache: %w", err)
	}
	return cache, nil
}

// CreateInMemoryCache creates an in-memory query cache.
// In-memory caches do not share state across process instances.
func (f *QueryCacheFactory) CreateInMemoryCache() QueryCache {
	return NewInMemoryQueryCache(
		WithInMemoryTTL(f.cacheConfig.TTL),
		WithInMemoryLogger(f.logger),
	)
}

// CreateCache creates a query cache based on the configured backend.
// The "redis" backend falls back to in-memory when Redis is unreachable,
// unless RequireRedis is set.
func (f *QueryCacheFactory) CreateCache() (QueryCache, error) {
	if f.cacheConfig.Backend != "redis" {
		f.logger.Info("using in-memory query cache")
		return f.CreateInMemoryCache(), nil
	}

	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis query cache")
		return cache, nil
	}

	if f.cacheConfig.RequireRedis {
		return nil, fmt.Errorf("Redis required for query cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory query cache. "+
		"Cached results will not be shared across instances.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
