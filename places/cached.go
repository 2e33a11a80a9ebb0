package places

import (
	"context"

	"github.com/rs/zerolog/log"
)

// CachedClient wraps a provider client with read-through caching. Cache
// failures degrade to direct provider calls.
type CachedClient struct {
	inner Client
	cache SearchCache
}

func NewCachedClient(inner Client, cache SearchCache) *CachedClient {
	return &CachedClient{inner: inner, cache: cache}
}

func (c *CachedClient) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	cached, err := c.cache.Get(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("search cache read failed")
	}
	if cached != nil {
		if limit > 0 && len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	results, err := c.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, query, results); err != nil {
		log.Warn().Err(err).Str("query", query).Msg("search cache write failed")
	}

	return results, nil
}

func (c *CachedClient) Source() string {
	return c.inner.Source()
}

var _ Client = (*CachedClient)(nil)
