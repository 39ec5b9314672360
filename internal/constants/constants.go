// Package constants centralizes shared defaults so they are not duplicated
// across the transport, clients, and CLI.
package constants

import "time"

// API endpoints and headers.
const (
	// DefaultAPIEndpoint is the public RevenueCat API v2 base URL.
	DefaultAPIEndpoint = "https://api.revenuecat.com/v2"

	// DefaultUserAgent identifies this client in requests.
	DefaultUserAgent = "revenuecat-go/1.0"

	// IdempotencyKeyHeader carries the client-generated idempotency key on
	// mutating requests.
	IdempotencyKeyHeader = "Idempotency-Key"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files. Config files
	// hold secret API keys, so they are owner-readable only.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries for transient
	// failures.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the server's default number of items per page.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100

	// DemoDisplayLimit limits items shown in examples.
	DemoDisplayLimit = 5
)

// Cache defaults.
const (
	// DefaultCacheTTL is how long cached GET responses stay fresh.
	DefaultCacheTTL = 5 * time.Minute
)
