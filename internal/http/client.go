// Package http implements the HTTP transport for the RevenueCat API: request
// construction, authentication, retries, response caching, and error mapping.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/frknlkn/revenuecat-go/internal/auth"
	"github.com/frknlkn/revenuecat-go/internal/constants"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// Request represents an API request.
type Request struct {
	Method string
	Path   string

	// Query holds parameters that go through standard URL encoding.
	Query url.Values

	// RawQuery, when non-empty, is used verbatim as the query string instead
	// of Query. List calls use it so server-issued cursors are forwarded
	// byte-for-byte.
	RawQuery string

	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client performs HTTP requests against the API.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       revenuecat.Logger
	debug        bool
	userAgent    string
	cacheManager *revenuecat.CacheManager
	cacheTTL     time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger for the transport.
func WithLogger(logger revenuecat.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig tunes the retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithCache attaches a response cache. Only responses the manager's policy
// accepts are cached, and cursor-bearing requests are always passed through.
func WithCache(manager *revenuecat.CacheManager, ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheManager = manager

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates an API transport rooted at baseURL. A nil tokenManager
// sends unauthenticated requests, which is only useful in tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		cacheTTL:     constants.DefaultCacheTTL,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Do executes a request. Non-2xx responses are returned alongside the parsed
// APIError so callers can inspect both.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)
	cacheKey, cacheable := c.cacheLookupKey(req)

	if cacheable {
		if cached, err := c.cacheManager.Get(ctx, cacheKey); err == nil {
			return &Response{StatusCode: http.StatusOK, Body: cached}, nil
		}
	}

	httpReq, err := c.newHTTPRequest(ctx, req, fullURL)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, revenuecat.ParseAPIError(httpResp.StatusCode, body)
	}

	if cacheable && c.cacheManager.Policy().ShouldCache(req.Method, req.Path, httpResp.StatusCode) {
		_ = c.cacheManager.SetWithETag(ctx, cacheKey, body, httpResp.Header.Get("ETag"), c.cacheTTL)
	}

	return resp, nil
}

// cacheLookupKey decides whether the request may touch the cache and, if so,
// under which key. Requests that carry a pagination cursor never touch the
// cache: each page of a traversal must observe the live cursor chain.
func (c *Client) cacheLookupKey(req *Request) (string, bool) {
	if c.cacheManager == nil || req.Method != http.MethodGet {
		return "", false
	}

	rawQuery := c.rawQuery(req)
	if strings.Contains(rawQuery, "starting_after=") {
		return "", false
	}

	if !c.cacheManager.Policy().ShouldCache(req.Method, req.Path, http.StatusOK) {
		return "", false
	}

	key := req.Method + ":" + req.Path
	if rawQuery != "" {
		key += "?" + rawQuery
	}

	return key, true
}

func (c *Client) rawQuery(req *Request) string {
	if req.RawQuery != "" {
		return req.RawQuery
	}

	if len(req.Query) > 0 {
		return req.Query.Encode()
	}

	return ""
}

func (c *Client) buildURL(req *Request) string {
	fullURL := c.baseURL + req.Path

	if rawQuery := c.rawQuery(req); rawQuery != "" {
		fullURL += "?" + rawQuery
	}

	return fullURL
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request, fullURL string) (*retryablehttp.Request, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Mutating requests get a client-generated idempotency key so a retried
	// request is not applied twice.
	if req.Method == http.MethodPost && req.Headers[constants.IdempotencyKeyHeader] == "" {
		httpReq.Header.Set(constants.IdempotencyKeyHeader, uuid.NewString())
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetRaw performs a GET request with a pre-encoded query string, used by list
// endpoints whose cursor must not be re-encoded.
func (c *Client) GetRaw(ctx context.Context, path, rawQuery string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, RawQuery: rawQuery})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
