package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultQueryTTL is how long cached partner query results stay fresh
	DefaultQueryTTL = 5 * time.Minute

	cacheKeyPrefix = "partners:"
)

// CachedQueries wraps PartnerService with a read-through query cache.
// Concurrent identical reads are collapsed into a single repository
// call, and every mutation invalidates the whole partner key family so
// readers never see a deleted or stale record past the next request.
type CachedQueries struct {
	service *PartnerService
	cache   cache.QueryCache
	group   singleflight.Group
	ttl     time.Duration
	logger  *zap.Logger
}

// CachedQueriesOption is a functional option for configuring CachedQueries
type CachedQueriesOption func(*CachedQueries)

// WithQueryTTL sets the cache TTL for query results
func WithQueryTTL(ttl time.Duration) CachedQueriesOption {
	return func(c *CachedQueries) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithQueryLogger sets the logger
func WithQueryLogger(logger *zap.Logger) CachedQueriesOption {
	return func(c *CachedQueries) {
		c.logger = logger
	}
}

// NewCachedQueries creates a new cached query layer over the partner service
func NewCachedQueries(service *PartnerService, queryCache cache.QueryCache, opts ...CachedQueriesOption) *CachedQueries {
	c := &CachedQueries{
		service: service,
		cache:   queryCache,
		ttl:     DefaultQueryTTL,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// listKey builds a cache key that is stable for equal filters
func listKey(filter ListFilter) string {
	status := "any"
	if filter.Status != nil {
		status = strconv.FormatBool(*filter.Status)
	}
	return fmt.Sprintf("%slist:%s|%s|%s|%s|%s",
		cacheKeyPrefix, filter.Search, filter.Type, status, filter.IndustrySegment, filter.Country)
}

// countKey builds a cache key for count queries
func countKey(filter ListFilter) string {
	status := "any"
	if filter.Status != nil {
		status = strconv.FormatBool(*filter.Status)
	}
	return fmt.Sprintf("%scount:%s|%s|%s|%s|%s",
		cacheKeyPrefix, filter.Search, filter.Type, status, filter.IndustrySegment, filter.Country)
}

// detailKey builds a cache key for a single partner
func detailKey(id uuid.UUID) string {
	return cacheKeyPrefix + "detail:" + id.String()
}

// List returns partners matching the filter, served from cache when fresh
func (c *CachedQueries) List(ctx context.Context, filter ListFilter) ([]PartnerResponse, error) {
	key := listKey(filter)

	if cached, ok := c.getCached(ctx, key); ok {
		var responses []PartnerResponse
		if err := json.Unmarshal(cached, &responses); err == nil {
			return responses, nil
		}
		// Corrupt entry, drop it and fall through to the source
		_ = c.cache.Delete(ctx, key)
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		responses, err := c.service.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		c.setCached(ctx, key, responses)
		return responses, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]PartnerResponse), nil
}

// Count returns the number of partners matching the filter
func (c *CachedQueries) Count(ctx context.Context, filter ListFilter) (int64, error) {
	key := countKey(filter)

	if cached, ok := c.getCached(ctx, key); ok {
		var count int64
		if err := json.Unmarshal(cached, &count); err == nil {
			return count, nil
		}
		_ = c.cache.Delete(ctx, key)
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		count, err := c.service.Count(ctx, filter)
		if err != nil {
			return nil, err
		}
		c.setCached(ctx, key, count)
		return count, nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

// GetByID returns a single partner, served from cache when fresh.
// A nil ID is rejected without touching the cache or the repository.
func (c *CachedQueries) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	if id == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Partner ID is required")
	}

	key := detailKey(id)

	if cached, ok := c.getCached(ctx, key); ok {
		var response PartnerResponse
		if err := json.Unmarshal(cached, &response); err == nil {
			return &response, nil
		}
		_ = c.cache.Delete(ctx, key)
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		response, err := c.service.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.setCached(ctx, key, response)
		return response, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*PartnerResponse), nil
}

// Create creates a partner and invalidates cached partner queries
func (c *CachedQueries) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	response, err := c.service.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return response, nil
}

// Update updates a partner and invalidates cached partner queries
func (c *CachedQueries) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	response, err := c.service.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return response, nil
}

// SetActive toggles a partner and invalidates cached partner queries
func (c *CachedQueries) SetActive(ctx context.Context, id uuid.UUID, active bool) (*PartnerResponse, error) {
	response, err := c.service.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return response, nil
}

// Delete removes a partner and invalidates cached partner queries
func (c *CachedQueries) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.service.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// getCached reads a key, treating cache failures as misses
func (c *CachedQueries) getCached(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("query cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return value, ok
}

// setCached stores a value, logging cache failures instead of surfacing them
func (c *CachedQueries) setCached(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode query result for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("query cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops every cached partner query after a mutation
func (c *CachedQueries) invalidate(ctx context.Context) {
	if err := c.cache.DeletePrefix(ctx, cacheKeyPrefix); err != nil {
		c.logger.Warn("query cache invalidation failed", zap.Error(err))
	}
}
