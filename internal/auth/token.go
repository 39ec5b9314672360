// Package auth provides credential management for the API client.
//
// RevenueCat authenticates with long-lived secret API keys rather than
// expiring OAuth tokens, so the manager here is deliberately simple: it hands
// out the configured key as a Bearer token. The TokenManager interface leaves
// room for rotating credential sources without touching the transport.
package auth

import (
	"context"
	"sync"

	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// TokenManager supplies Bearer tokens to the HTTP transport.
type TokenManager interface {
	// GetToken returns the token to send on the next request.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces the manager to obtain a fresh token.
	RefreshToken(ctx context.Context) error
}

// StaticTokenManager hands out a fixed secret API key. Safe for concurrent
// use; SetKey swaps the key atomically for callers that rotate keys
// out-of-band.
type StaticTokenManager struct {
	mu  sync.RWMutex
	key string
}

// NewStaticTokenManager creates a token manager around a secret API key.
func NewStaticTokenManager(key string) *StaticTokenManager {
	return &StaticTokenManager{key: key}
}

// GetToken returns the configured API key.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.key == "" {
		return "", revenuecat.ErrAPIKeyRequired
	}

	return m.key, nil
}

// RefreshToken is not supported for static keys.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return revenuecat.ErrStaticTokenNoRotate
}

// SetKey replaces the API key used for subsequent requests.
func (m *StaticTokenManager) SetKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.key = key
}
