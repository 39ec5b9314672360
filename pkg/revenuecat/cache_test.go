package revenuecat_test

import (
	"context"
	"testing"
	"time"

	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetAndGet(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)
	ctx := context.Background()

	entry := &revenuecat.CacheEntry{
		Data:      []byte(`{"object":"project"}`),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCacheGetNonExistent(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, revenuecat.ErrCacheKeyNotFound)
}

func TestMemoryCacheGetExpired(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)
	ctx := context.Background()

	entry := &revenuecat.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))

	_, err := cache.Get(ctx, "key1")
	require.ErrorIs(t, err, revenuecat.ErrCacheEntryExpired)
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		entry := &revenuecat.CacheEntry{
			Data:      []byte("data"),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		require.NoError(t, cache.Set(ctx, key, entry))
	}

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
}

func TestMemoryCacheMaxSize(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &revenuecat.CacheEntry{
			Data:      []byte("data"),
			ExpiresAt: time.Now().Add(time.Duration(i+1) * time.Hour),
		}
		require.NoError(t, cache.Set(ctx, string(rune('a'+i)), entry))
	}

	has := 0

	for i := 0; i < 3; i++ {
		if cache.Has(ctx, string(rune('a'+i))) {
			has++
		}
	}

	assert.LessOrEqual(t, has, 2)
}

func TestMemoryCacheCleanup(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)
	ctx := context.Background()

	_ = cache.Set(ctx, "expired", &revenuecat.CacheEntry{
		Data:      []byte("expired"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	_ = cache.Set(ctx, "valid", &revenuecat.CacheEntry{
		Data:      []byte("valid"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})

	cache.Cleanup()

	assert.True(t, cache.Has(ctx, "valid"))
	assert.False(t, cache.Has(ctx, "expired"))
}

func TestCacheManagerGetCacheKey(t *testing.T) {
	t.Parallel()

	manager := revenuecat.NewCacheManager(nil, nil)

	key1 := manager.GetCacheKey("GET", "/v2/projects/proj_1/products", nil)
	assert.Equal(t, "GET:/v2/projects/proj_1/products", key1)

	params := map[string]string{"expand": "app", "limit": "50"}
	key2 := manager.GetCacheKey("GET", "/v2/projects/proj_1/products", params)
	assert.Equal(t, "GET:/v2/projects/proj_1/products:expand=app&limit=50", key2)
}

func TestCacheManagerStats(t *testing.T) {
	t.Parallel()

	cache := revenuecat.NewMemoryCache(10)
	manager := revenuecat.NewCacheManager(cache, nil)
	ctx := context.Background()

	require.NoError(t, manager.Set(ctx, "key", []byte("data"), 1*time.Hour))

	data, err := manager.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = manager.Get(ctx, "missing")
	require.Error(t, err)

	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.InDelta(t, 0.5, stats.GetHitRate(), 0.0001)
}

func TestCacheManagerDisabled(t *testing.T) {
	t.Parallel()

	manager := revenuecat.NewCacheManager(nil, nil)
	ctx := context.Background()

	_, err := manager.Get(ctx, "key")
	require.ErrorIs(t, err, revenuecat.ErrCacheDisabled)

	// Sets and invalidations are no-ops rather than errors.
	require.NoError(t, manager.Set(ctx, "key", []byte("data"), time.Minute))
	require.NoError(t, manager.Invalidate(ctx, "key"))
}

func TestCachingPolicyShouldCache(t *testing.T) {
	t.Parallel()

	policy := revenuecat.DefaultCachingPolicy()

	assert.True(t, policy.ShouldCache("GET", "/v2/projects/proj_1/products/prod_1", 200))
	assert.False(t, policy.ShouldCache("POST", "/v2/projects/proj_1/products", 201))
	assert.False(t, policy.ShouldCache("GET", "/v2/projects/proj_1/products/prod_1", 404))
	assert.False(t, policy.ShouldCache("GET", "/v2/projects/proj_1/metrics/overview", 200))

	custom := &revenuecat.CachingPolicy{
		CacheGET:     true,
		IncludePaths: []string{"/products"},
	}

	assert.True(t, custom.ShouldCache("GET", "/v2/projects/proj_1/products/prod_1", 200))
	assert.False(t, custom.ShouldCache("GET", "/v2/projects/proj_1/customers/cust_1", 200))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	memory, err := revenuecat.NewCacheFromConfig(&revenuecat.CacheConfig{Type: revenuecat.CacheTypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &revenuecat.MemoryCache{}, memory)

	noop, err := revenuecat.NewCacheFromConfig(&revenuecat.CacheConfig{Type: revenuecat.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &revenuecat.NoOpCache{}, noop)

	defaulted, err := revenuecat.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &revenuecat.MemoryCache{}, defaulted)

	_, err = revenuecat.NewCacheFromConfig(&revenuecat.CacheConfig{Type: revenuecat.CacheTypeNATS})
	require.ErrorIs(t, err, revenuecat.ErrNATSConfigRequired)

	_, err = revenuecat.NewCacheFromConfig(&revenuecat.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, revenuecat.ErrUnsupportedCacheType)
}
