// Package client implements the resource clients declared in pkg/revenuecat
// on top of the internal HTTP transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// projectPath prefixes a resource path with its project scope.
func projectPath(projectID, suffix string) (string, error) {
	if projectID == "" {
		return "", revenuecat.ErrProjectIDRequired
	}

	return "/projects/" + projectID + suffix, nil
}

// listPage performs a list request and decodes one page. The query is encoded
// (and therefore validated) before any network traffic, and the encoded string
// is sent verbatim so cursors are never re-encoded.
func listPage[T any](ctx context.Context, httpClient *http.Client, path string, params *revenuecat.ListQuery, what string) (*revenuecat.Page[T], error) {
	rawQuery, err := params.Encode()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	resp, err := httpClient.GetRaw(ctx, path, rawQuery)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	page, err := revenuecat.DecodePage[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	return page, nil
}

// getResource performs a GET request and decodes a single resource.
func getResource[T any](ctx context.Context, httpClient *http.Client, path string, params *revenuecat.GetQuery, what string) (*T, error) {
	resp, err := httpClient.GetRaw(ctx, path, params.Encode())
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	return decodeResource[T](resp.Body, what)
}

// postResource performs a POST request and decodes the resulting resource.
func postResource[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return decodeResource[T](resp.Body, what)
}

// updateResource performs a POST request against an update endpoint. The API
// uses POST rather than PATCH for partial updates.
func updateResource[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}, what string) (*T, error) {
	return postResource[T](ctx, httpClient, path, body, what)
}

// deleteResource performs a DELETE request and decodes the deletion receipt.
func deleteResource(ctx context.Context, httpClient *http.Client, path, what string) (*revenuecat.DeletedObject, error) {
	resp, err := httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return decodeResource[revenuecat.DeletedObject](resp.Body, what)
}

func decodeResource[T any](body []byte, what string) (*T, error) {
	var resource T

	err := json.Unmarshal(body, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &resource, nil
}
