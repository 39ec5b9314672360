package rcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frknlkn/revenuecat-go/pkg/rcclient"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &revenuecat.Config{
			APIKey: "sk_test",
		}

		client, err := rcclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.revenuecat.com/v2", config.APIEndpoint)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := rcclient.New(nil)
		require.ErrorIs(t, err, revenuecat.ErrConfigRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := rcclient.New(&revenuecat.Config{})
		require.ErrorIs(t, err, revenuecat.ErrAPIKeyRequired)
	})

	t.Run("normalizes endpoint", func(t *testing.T) {
		t.Parallel()

		config := &revenuecat.Config{
			APIEndpoint: "api.example.com/v2/",
			APIKey:      "sk_test",
		}

		client, err := rcclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.example.com/v2", config.APIEndpoint)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := rcclient.NewWithAPIKey("sk_test")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := rcclient.NewWithEndpoint("https://api.example.com/v2", "sk_test")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/projects":
			assert.Equal(t, "Bearer sk_test", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"object": "list",
				"items": []map[string]interface{}{
					{"object": "project", "id": "proj_1", "name": "Test Project"},
				},
				"next_page": nil,
				"url":       "/v2/projects",
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := rcclient.NewWithEndpoint(server.URL, "sk_test")
	require.NoError(t, err)

	page, err := client.Projects().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Test Project", page.Items[0].Name)
	assert.False(t, page.HasMore())
}
