package client_test

import (
	"testing"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, revenuecat.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&revenuecat.Config{APIKey: "sk_test"})
		require.Error(t, err)
		assert.ErrorIs(t, err, client.ErrAPIEndpointRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&revenuecat.Config{APIEndpoint: "https://api.revenuecat.com/v2"})
		require.Error(t, err)
		assert.ErrorIs(t, err, revenuecat.ErrAPIKeyRequired)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&revenuecat.Config{
			APIEndpoint: "https://api.revenuecat.com/v2",
			APIKey:      "sk_test",
		})
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.NotNil(t, c.Projects())
		assert.NotNil(t, c.Apps())
		assert.NotNil(t, c.Customers())
		assert.NotNil(t, c.Products())
		assert.NotNil(t, c.Entitlements())
		assert.NotNil(t, c.Offerings())
		assert.NotNil(t, c.Packages())
		assert.NotNil(t, c.Subscriptions())
		assert.NotNil(t, c.Purchases())
		assert.NotNil(t, c.VirtualCurrencies())
		assert.NotNil(t, c.Metrics())
	})

	t.Run("with memory cache", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&revenuecat.Config{
			APIEndpoint: "https://api.revenuecat.com/v2",
			APIKey:      "sk_test",
			Cache:       revenuecat.DefaultCacheConfig(),
		})
		require.NoError(t, err)
		require.NotNil(t, c)
	})

	t.Run("unsupported cache type", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&revenuecat.Config{
			APIEndpoint: "https://api.revenuecat.com/v2",
			APIKey:      "sk_test",
			Cache:       &revenuecat.CacheConfig{Type: "bogus"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, revenuecat.ErrUnsupportedCacheType)
	})
}
