package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// SearchCacheKeyPrefix is the Redis key prefix for cached search results.
	SearchCacheKeyPrefix = "places:search:"
	// SearchCacheTTL is how long a cached search result stays valid.
	SearchCacheTTL = 30 * time.Minute
)

// SearchCache caches provider search results so repeated lookups for the
// same query do not burn provider quota.
type SearchCache interface {
	// Get returns the cached results for a query, or nil when absent.
	Get(ctx context.Context, query string) ([]Place, error)
	// Set stores results for a query.
	Set(ctx context.Context, query string, places []Place) error
	// Delete drops the cached results for a query.
	Delete(ctx context.Context, query string) error
}

type redisSearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a Redis-backed search cache.
func NewSearchCache(redisAddr string, redisPassword string) (SearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisSearchCache{client: client}, nil
}

func cacheKey(query string) string {
	return SearchCacheKeyPrefix + query
}

func (c *redisSearchCache) Get(ctx context.Context, query string) ([]Place, error) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var places []Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("unmarshal cached places failed: %w", err)
	}

	return places, nil
}

func (c *redisSearchCache) Set(ctx context.Context, query string, places []Place) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("marshal places failed: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(query), data, SearchCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisSearchCache) Delete(ctx context.Context, query string) error {
	if err := c.client.Del(ctx, cacheKey(query)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}
