// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/usecase"
)

// CachingDataFrameRepository decorates a DataFrameRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Chart queries are repeated by every
// browser poll, so even a short TTL removes most upstream calls.
type CachingDataFrameRepository struct {
	inner     usecase.DataFrameRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.DataFrameRepository = (*CachingDataFrameRepository)(nil)

// NewCachingDataFrameRepository decorates a DataFrameRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "dataframe".
func NewCachingDataFrameRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DataFrameRepository, namespace string) *CachingDataFrameRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "dataframe"
	}
	return &CachingDataFrameRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves a dataframe, checking cache first then falling back to the upstream API.
func (c *CachingDataFrameRepository) Fetch(ctx context.Context, query url.Values) (*usecase.DataFrameResponse, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Fetch(ctx, query)
	}

	key := c.cacheKey(query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out usecase.DataFrameResponse
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream API
	out, err := c.inner.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
// url.Values.Encode sorts keys, so equivalent queries share an entry.
func (c *CachingDataFrameRepository) cacheKey(query url.Values) string {
	return c.namespace + ":" + safe(query.Encode())
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
