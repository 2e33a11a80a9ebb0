package places

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	results []Place
	err     error
	calls   int
}

func (c *fakeClient) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.results, nil
}

func (c *fakeClient) Source() string { return "fake" }

type memoryCache struct {
	entries map[string][]Place
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]Place{}}
}

func (c *memoryCache) Get(ctx context.Context, query string) ([]Place, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[query], nil
}

func (c *memoryCache) Set(ctx context.Context, query string, places []Place) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[query] = places
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, query string) error {
	delete(c.entries, query)
	return nil
}

func TestCachedClientMissThenHit(t *testing.T) {
	inner := &fakeClient{results: []Place{
		{Name: "Quiet Cafe", Category: "cafe", Source: "fake", SourceID: "a"},
		{Name: "City Park", Category: "park", Source: "fake", SourceID: "b"},
	}}
	cache := newMemoryCache()
	client := NewCachedClient(inner, cache)

	got, err := client.Search(context.Background(), "quiet", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, inner.calls)

	// Second call must come from the cache.
	got, err = client.Search(context.Background(), "quiet", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, inner.calls)
}

func TestCachedClientHitRespectsLimit(t *testing.T) {
	inner := &fakeClient{}
	cache := newMemoryCache()
	cache.entries["seoul"] = []Place{
		{Name: "A", SourceID: "a"},
		{Name: "B", SourceID: "b"},
		{Name: "C", SourceID: "c"},
	}
	client := NewCachedClient(inner, cache)

	got, err := client.Search(context.Background(), "seoul", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 0, inner.calls)
}

func TestCachedClientCacheFailureFallsThrough(t *testing.T) {
	inner := &fakeClient{results: []Place{{Name: "A", SourceID: "a"}}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	client := NewCachedClient(inner, cache)

	got, err := client.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1, inner.calls)
}

func TestCachedClientProviderError(t *testing.T) {
	providerErr := errors.New("quota exceeded")
	inner := &fakeClient{err: providerErr}
	client := NewCachedClient(inner, newMemoryCache())

	_, err := client.Search(context.Background(), "anything", 5)
	require.ErrorIs(t, err, providerErr)
}

func TestCachedClientSource(t *testing.T) {
	client := NewCachedClient(&fakeClient{}, newMemoryCache())
	require.Equal(t, "fake", client.Source())
}
