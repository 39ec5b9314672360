package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementsList(t *testing.T) {
	t.Parallel()

	client.RunListTest(t, "list entitlements", "/projects/proj_test/entitlements", "",
		[]revenuecat.Entitlement{
			{Object: "entitlement", ID: "entl_1", LookupKey: "premium", DisplayName: "Premium"},
		},
		func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Entitlement], error) {
			return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Entitlement], error) {
				return c.Entitlements().List(ctx, client.TestProjectID, params)
			}
		},
		nil,
		func(items []revenuecat.Entitlement) {
			assert.Equal(t, "premium", items[0].LookupKey)
		})
}

func TestEntitlementsCreate(t *testing.T) {
	t.Parallel()

	client.RunCreateTest(t, "create entitlement", "/projects/proj_test/entitlements",
		&revenuecat.EntitlementCreateRequest{LookupKey: "premium", DisplayName: "Premium"},
		map[string]interface{}{"object": "entitlement", "id": "entl_1", "lookup_key": "premium", "display_name": "Premium"},
		func(c *client.Client) func(context.Context, *revenuecat.EntitlementCreateRequest) (*revenuecat.Entitlement, error) {
			return func(ctx context.Context, request *revenuecat.EntitlementCreateRequest) (*revenuecat.Entitlement, error) {
				return c.Entitlements().Create(ctx, client.TestProjectID, request)
			}
		},
		func(request *revenuecat.EntitlementCreateRequest) {
			assert.Equal(t, "premium", request.LookupKey)
		},
		func(entitlement *revenuecat.Entitlement) {
			assert.Equal(t, "entl_1", entitlement.ID)
		})
}

func TestEntitlementsUpdate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/proj_test/entitlements/entl_1", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body revenuecat.EntitlementUpdateRequest

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "Premium Plus", body.DisplayName)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"object": "entitlement", "id": "entl_1", "display_name": "Premium Plus",
		})
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	entitlement, err := testClient.Entitlements().Update(context.Background(), client.TestProjectID, "entl_1",
		&revenuecat.EntitlementUpdateRequest{DisplayName: "Premium Plus"})
	require.NoError(t, err)
	assert.Equal(t, "Premium Plus", entitlement.DisplayName)
}

func TestEntitlementsDelete(t *testing.T) {
	t.Parallel()

	client.RunDeleteTest(t, "delete entitlement", "/projects/proj_test/entitlements/entl_1", "entl_1",
		func(c *client.Client) func(context.Context) (*revenuecat.DeletedObject, error) {
			return func(ctx context.Context) (*revenuecat.DeletedObject, error) {
				return c.Entitlements().Delete(ctx, client.TestProjectID, "entl_1")
			}
		})
}

func TestEntitlementsAttachDetachProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		expectedPath string
		call         func(*client.Client, context.Context) (*revenuecat.Entitlement, error)
	}{
		{
			name:         "attach",
			expectedPath: "/projects/proj_test/entitlements/entl_1/actions/attach_products",
			call: func(c *client.Client, ctx context.Context) (*revenuecat.Entitlement, error) {
				return c.Entitlements().AttachProducts(ctx, client.TestProjectID, "entl_1", []string{"prod_1", "prod_2"})
			},
		},
		{
			name:         "detach",
			expectedPath: "/projects/proj_test/entitlements/entl_1/actions/detach_products",
			call: func(c *client.Client, ctx context.Context) (*revenuecat.Entitlement, error) {
				return c.Entitlements().DetachProducts(ctx, client.TestProjectID, "entl_1", []string{"prod_1", "prod_2"})
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.expectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)

				var body map[string][]string

				_ = json.NewDecoder(request.Body).Decode(&body)
				assert.Equal(t, []string{"prod_1", "prod_2"}, body["product_ids"])

				writer.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(writer).Encode(map[string]interface{}{"object": "entitlement", "id": "entl_1"})
			}))
			defer server.Close()

			entitlement, err := testCase.call(client.NewTestClient(server.URL), context.Background())
			require.NoError(t, err)
			assert.Equal(t, "entl_1", entitlement.ID)
		})
	}
}

func TestEntitlementsListProducts(t *testing.T) {
	t.Parallel()

	client.RunListTest(t, "list entitlement products", "/projects/proj_test/entitlements/entl_1/products", "",
		[]revenuecat.Product{{Object: "product", ID: "prod_1"}},
		func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Product], error) {
			return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Product], error) {
				return c.Entitlements().ListProducts(ctx, client.TestProjectID, "entl_1", params)
			}
		},
		nil, nil)
}
