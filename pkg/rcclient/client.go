// Package rcclient provides the main entry point for creating RevenueCat API clients
package rcclient

import (
	"fmt"
	"strings"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/internal/constants"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// New creates a new RevenueCat API v2 client from the given configuration.
func New(config *revenuecat.Config) (revenuecat.Client, error) {
	if config == nil {
		return nil, revenuecat.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, revenuecat.ErrAPIKeyRequired
	}

	// Normalize API endpoint
	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = constants.DefaultAPIEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client against the public API using a secret
// API key (sk_...).
func NewWithAPIKey(apiKey string) (revenuecat.Client, error) {
	return New(&revenuecat.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a new client against a custom endpoint, mainly
// useful for testing against a local server.
func NewWithEndpoint(endpoint, apiKey string) (revenuecat.Client, error) {
	return New(&revenuecat.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}
