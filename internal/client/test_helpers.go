package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// TestProjectID is the project scope used by the resource client tests.
const TestProjectID = "proj_test"

// NewTestClient creates a client against a test server, without auth.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// ListPageResponse builds a wire-shaped list body for test servers.
func ListPageResponse(items interface{}, nextPage, url string) map[string]interface{} {
	body := map[string]interface{}{
		"object":    "list",
		"items":     items,
		"next_page": nil,
		"url":       url,
	}

	if nextPage != "" {
		body["next_page"] = nextPage
	}

	return body
}

// RunListTest runs a generic list test: it asserts path and query, serves the
// given items, and checks the decoded page.
func RunListTest[T any](
	t *testing.T,
	testName string,
	expectedPath string,
	expectedRawQuery string,
	items []T,
	listFunc func(*Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[T], error),
	params *revenuecat.ListQuery,
	validateItems func([]T),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, expectedRawQuery, request.URL.RawQuery)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(ListPageResponse(items, "", expectedPath))
		}))
		defer server.Close()

		listFn := listFunc(NewTestClient(server.URL))

		page, err := listFn(context.Background(), params)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, "list", page.Object)
		assert.Len(t, page.Items, len(items))
		assert.False(t, page.HasMore())

		if validateItems != nil {
			validateItems(page.Items)
		}
	})
}

// RunGetTest runs a generic single-resource get test.
func RunGetTest[T any](
	t *testing.T,
	testName string,
	expectedPath string,
	response interface{},
	getFunc func(*Client) func(context.Context) (*T, error),
	validate func(*T),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		getFn := getFunc(NewTestClient(server.URL))

		result, err := getFn(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)

		if validate != nil {
			validate(result)
		}
	})
}

// RunCreateTest runs a generic create test, asserting the decoded request
// body.
func RunCreateTest[TRequest, TResponse any](
	t *testing.T,
	testName string,
	expectedPath string,
	request *TRequest,
	response interface{},
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
	validateRequest func(*TRequest),
	validate func(*TResponse),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, httpRequest *http.Request) {
			assert.Equal(t, expectedPath, httpRequest.URL.Path)
			assert.Equal(t, "POST", httpRequest.Method)

			var decoded TRequest

			err := json.NewDecoder(httpRequest.Body).Decode(&decoded)
			assert.NoError(t, err)

			if validateRequest != nil {
				validateRequest(&decoded)
			}

			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		createFn := createFunc(NewTestClient(server.URL))

		result, err := createFn(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result)

		if validate != nil {
			validate(result)
		}
	})
}

// RunDeleteTest runs a generic delete test returning a deletion receipt.
func RunDeleteTest(
	t *testing.T,
	testName string,
	expectedPath string,
	deletedID string,
	deleteFunc func(*Client) func(context.Context) (*revenuecat.DeletedObject, error),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"object":     "object",
				"id":         deletedID,
				"deleted_at": 1658399423658,
			})
		}))
		defer server.Close()

		deleteFn := deleteFunc(NewTestClient(server.URL))

		deleted, err := deleteFn(context.Background())
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, deletedID, deleted.ID)
	})
}

// RunNotFoundTest asserts that an API error response classifies as not-found.
func RunNotFoundTest[T any](
	t *testing.T,
	testName string,
	getFunc func(*Client) func(context.Context) (*T, error),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"type":    "resource_missing",
				"message": "Not found",
			})
		}))
		defer server.Close()

		getFn := getFunc(NewTestClient(server.URL))

		result, err := getFn(context.Background())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, revenuecat.IsNotFound(err))
	})
}
