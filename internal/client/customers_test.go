package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersList(t *testing.T) {
	t.Parallel()

	client.RunListTest(t, "list customers", "/projects/proj_test/customers", "limit=20",
		[]revenuecat.Customer{
			{Object: "customer", ID: "cust_1", ProjectID: client.TestProjectID},
			{Object: "customer", ID: "cust_2", ProjectID: client.TestProjectID},
		},
		func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Customer], error) {
			return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Customer], error) {
				return c.Customers().List(ctx, client.TestProjectID, params)
			}
		},
		revenuecat.NewListQuery().WithLimit(20),
		func(items []revenuecat.Customer) {
			assert.Equal(t, "cust_1", items[0].ID)
			assert.Equal(t, "cust_2", items[1].ID)
		})
}

func TestCustomersListInvalidLimit(t *testing.T) {
	t.Parallel()

	// Validation must fail before the request reaches the network.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be made for an invalid limit")
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	_, err := testClient.Customers().List(context.Background(), client.TestProjectID,
		revenuecat.NewListQuery().WithLimit(-1))
	require.ErrorIs(t, err, revenuecat.ErrInvalidLimit)
}

func TestCustomersListMissingProjectID(t *testing.T) {
	t.Parallel()

	testClient := client.NewTestClient("http://localhost:0")

	_, err := testClient.Customers().List(context.Background(), "", nil)
	require.ErrorIs(t, err, revenuecat.ErrProjectIDRequired)
}

func TestCustomersListPagination(t *testing.T) {
	t.Parallel()

	// Two-page traversal end to end: the cursor from page one's next_page must
	// arrive verbatim on the second request.
	requests := []string{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests = append(requests, request.URL.RawQuery)
		writer.Header().Set("Content-Type", "application/json")

		switch request.URL.RawQuery {
		case "":
			next := server_url(request) + "/projects/proj_test/customers?starting_after=cust_2"
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"object": "list",
				"items": []map[string]string{
					{"object": "customer", "id": "cust_1"},
					{"object": "customer", "id": "cust_2"},
				},
				"next_page": next,
				"url":       "/projects/proj_test/customers",
			})
		case "starting_after=cust_2":
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"object": "list",
				"items": []map[string]string{
					{"object": "customer", "id": "cust_3"},
				},
				"next_page": nil,
				"url":       "/projects/proj_test/customers",
			})
		default:
			t.Errorf("unexpected query %q", request.URL.RawQuery)
		}
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	fetch := revenuecat.ListFetcher(nil, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Customer], error) {
		return testClient.Customers().List(ctx, client.TestProjectID, params)
	})

	customers, err := revenuecat.FetchAll(context.Background(), fetch, nil)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "cust_1", customers[0].ID)
	assert.Equal(t, "cust_3", customers[2].ID)
	assert.Equal(t, []string{"", "starting_after=cust_2"}, requests)
}

func server_url(request *http.Request) string {
	return "http://" + request.Host
}

func TestCustomersGet(t *testing.T) {
	t.Parallel()

	client.RunGetTest(t, "get customer", "/projects/proj_test/customers/cust_1",
		map[string]interface{}{
			"object":        "customer",
			"id":            "cust_1",
			"project_id":    client.TestProjectID,
			"first_seen_at": 1658399423658,
			"last_seen_at":  1658399424000,
		},
		func(c *client.Client) func(context.Context) (*revenuecat.Customer, error) {
			return func(ctx context.Context) (*revenuecat.Customer, error) {
				return c.Customers().Get(ctx, client.TestProjectID, "cust_1", nil)
			}
		},
		func(customer *revenuecat.Customer) {
			assert.Equal(t, "cust_1", customer.ID)
			assert.Equal(t, int64(1658399423658), customer.FirstSeenAt.UnixMilli())
		})
}

func TestCustomersGetNotFound(t *testing.T) {
	t.Parallel()

	client.RunNotFoundTest(t, "customer not found",
		func(c *client.Client) func(context.Context) (*revenuecat.Customer, error) {
			return func(ctx context.Context) (*revenuecat.Customer, error) {
				return c.Customers().Get(ctx, client.TestProjectID, "missing", nil)
			}
		})
}

func TestCustomersCreate(t *testing.T) {
	t.Parallel()

	client.RunCreateTest(t, "create customer", "/projects/proj_test/customers",
		&revenuecat.CustomerCreateRequest{ID: "app_user_1"},
		map[string]interface{}{"object": "customer", "id": "app_user_1"},
		func(c *client.Client) func(context.Context, *revenuecat.CustomerCreateRequest) (*revenuecat.Customer, error) {
			return func(ctx context.Context, request *revenuecat.CustomerCreateRequest) (*revenuecat.Customer, error) {
				return c.Customers().Create(ctx, client.TestProjectID, request)
			}
		},
		func(request *revenuecat.CustomerCreateRequest) {
			assert.Equal(t, "app_user_1", request.ID)
		},
		func(customer *revenuecat.Customer) {
			assert.Equal(t, "app_user_1", customer.ID)
		})
}

func TestCustomersDelete(t *testing.T) {
	t.Parallel()

	client.RunDeleteTest(t, "delete customer", "/projects/proj_test/customers/cust_1", "cust_1",
		func(c *client.Client) func(context.Context) (*revenuecat.DeletedObject, error) {
			return func(ctx context.Context) (*revenuecat.DeletedObject, error) {
				return c.Customers().Delete(ctx, client.TestProjectID, "cust_1")
			}
		})
}

func TestCustomersAssignOffering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		request  *revenuecat.AssignOfferingRequest
		wantBody string
	}{
		{
			name:     "assign",
			request:  &revenuecat.AssignOfferingRequest{OfferingID: revenuecat.NullableOf("ofr_1")},
			wantBody: `{"offering_id":"ofr_1"}`,
		},
		{
			name:     "clear",
			request:  &revenuecat.AssignOfferingRequest{OfferingID: revenuecat.Null[string]()},
			wantBody: `{"offering_id":null}`,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, "/projects/proj_test/customers/cust_1/offering", request.URL.Path)
				assert.Equal(t, "POST", request.Method)

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, testCase.wantBody, string(body))

				writer.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(writer).Encode(map[string]interface{}{"object": "customer", "id": "cust_1"})
			}))
			defer server.Close()

			testClient := client.NewTestClient(server.URL)

			customer, err := testClient.Customers().AssignOffering(context.Background(),
				client.TestProjectID, "cust_1", testCase.request)
			require.NoError(t, err)
			assert.Equal(t, "cust_1", customer.ID)
		})
	}
}

func TestCustomersSetAttributes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/proj_test/customers/cust_1/attributes", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"object": "list",
			"items": []map[string]interface{}{
				{"object": "customer.attribute", "name": "$email", "value": "x@example.com", "updated_at": 1658399423658},
			},
			"next_page": nil,
			"url":       "/projects/proj_test/customers/cust_1/attributes",
		})
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	page, err := testClient.Customers().SetAttributes(context.Background(), client.TestProjectID, "cust_1",
		&revenuecat.CustomerAttributesRequest{
			Attributes: []revenuecat.CustomerAttributeValue{
				{Name: "$email", Value: revenuecat.NullableOf("x@example.com")},
			},
		})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "$email", page.Items[0].Name)
}

func TestCustomersSubresourceLists(t *testing.T) {
	t.Parallel()

	t.Run("aliases", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list aliases", "/projects/proj_test/customers/cust_1/aliases", "",
			[]revenuecat.CustomerAlias{{Object: "customer.alias", ID: "alias_1"}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerAlias], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerAlias], error) {
					return c.Customers().ListAliases(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			nil, nil)
	})

	t.Run("active entitlements", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list active entitlements", "/projects/proj_test/customers/cust_1/active_entitlements", "",
			[]revenuecat.CustomerEntitlement{{Object: "customer.active_entitlement", EntitlementID: "entl_1"}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerEntitlement], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerEntitlement], error) {
					return c.Customers().ListActiveEntitlements(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			nil, nil)
	})

	t.Run("virtual currency balances", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list balances", "/projects/proj_test/customers/cust_1/virtual_currencies_balances", "",
			[]revenuecat.VirtualCurrencyBalance{{Object: "virtual_currencies.balance", Balance: 100}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrencyBalance], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrencyBalance], error) {
					return c.Customers().ListVirtualCurrencyBalances(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			nil, nil)
	})

	t.Run("subscriptions", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list subscriptions", "/projects/proj_test/customers/cust_1/subscriptions", "environment=production",
			[]revenuecat.Subscription{{Object: "subscription", ID: "sub_1"}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Subscription], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Subscription], error) {
					return c.Customers().ListSubscriptions(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			revenuecat.NewListQuery().WithFilter("environment", "production"), nil)
	})

	t.Run("purchases", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list purchases", "/projects/proj_test/customers/cust_1/purchases", "",
			[]revenuecat.Purchase{{Object: "purchase", ID: "purc_1"}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Purchase], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Purchase], error) {
					return c.Customers().ListPurchases(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			nil, nil)
	})

	t.Run("invoices", func(t *testing.T) {
		t.Parallel()

		client.RunListTest(t, "list invoices", "/projects/proj_test/customers/cust_1/invoices", "",
			[]revenuecat.Invoice{{Object: "invoice", ID: "rcbin_1"}},
			func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Invoice], error) {
				return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Invoice], error) {
					return c.Customers().ListInvoices(ctx, client.TestProjectID, "cust_1", params)
				}
			},
			nil, nil)
	})
}
