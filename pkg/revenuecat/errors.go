package revenuecat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the machine-readable error category returned by the API.
type ErrorType string

// Error types returned by the RevenueCat API.
const (
	ErrorTypeParameter             ErrorType = "parameter_error"
	ErrorTypeResourceMissing       ErrorType = "resource_missing"
	ErrorTypeResourceAlreadyExists ErrorType = "resource_already_exists"
	ErrorTypeInvalidRequest        ErrorType = "invalid_request"
	ErrorTypeAuthentication        ErrorType = "authentication_error"
	ErrorTypeAuthorization         ErrorType = "authorization_error"
	ErrorTypeRateLimit             ErrorType = "rate_limit_error"
	ErrorTypeStore                 ErrorType = "store_error"
	ErrorTypeServer                ErrorType = "server_error"
	ErrorTypeUnprocessableEntity   ErrorType = "unprocessable_entity_error"
)

// APIError represents an error response from the RevenueCat API.
type APIError struct {
	Type      ErrorType `json:"type"                 yaml:"type"`
	Param     string    `json:"param,omitempty"      yaml:"param,omitempty"`
	Message   string    `json:"message"              yaml:"message"`
	DocURL    string    `json:"doc_url,omitempty"    yaml:"doc_url,omitempty"`
	Retryable bool      `json:"retryable"            yaml:"retryable"`
	BackoffMs int64     `json:"backoff_ms,omitempty" yaml:"backoff_ms,omitempty"`

	// StatusCode is the HTTP status the error arrived with. Not part of the
	// response body.
	StatusCode int `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Type, e.Message, e.StatusCode)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrProjectIDRequired   = errors.New("project ID is required")
	ErrInvalidLimit        = errors.New("limit must be a positive integer")
	ErrInvalidTimestamp    = errors.New("timestamp must be milliseconds since the Unix epoch")
	ErrMalformedPage       = errors.New("malformed page response")
	ErrNoMorePages         = errors.New("no more pages")
	ErrNoMoreItems         = errors.New("no more items")
	ErrTooManyPages        = errors.New("page fetch cap exceeded")
	ErrNilPage             = errors.New("page fetcher returned a nil page")
	ErrNoTokenManager      = errors.New("no token manager configured")
	ErrStaticTokenNoRotate = errors.New("static API key cannot be rotated")
)

// IsNotFound checks if the error is a resource-missing error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeResourceMissing || apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsRateLimited checks if the error is a rate-limit error. The transport
// layer owns any retry/backoff policy; callers should not retry traversals.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeRateLimit || apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsAuthenticationError checks if the error means the API key was missing or
// rejected.
func IsAuthenticationError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuthentication || apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsServerError checks if the error originated server-side.
func IsServerError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeServer || apiErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

// ParseAPIError parses an error response body. The status code is attached to
// the returned error for classification.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := APIError{}

	err := json.Unmarshal(data, &apiErr)
	if err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	apiErr.StatusCode = statusCode

	return &apiErr
}
