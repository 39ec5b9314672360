package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// CustomersClient implements revenuecat.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Customer], error) {
	path, err := projectPath(projectID, "/customers")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Customer](ctx, c.httpClient, path, params, "customers")
}

// Get implements revenuecat.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, projectID, customerID string, params *revenuecat.GetQuery) (*revenuecat.Customer, error) {
	path, err := projectPath(projectID, "/customers/"+customerID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Customer](ctx, c.httpClient, path, params, "customer")
}

// Create implements revenuecat.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, projectID string, request *revenuecat.CustomerCreateRequest) (*revenuecat.Customer, error) {
	path, err := projectPath(projectID, "/customers")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Customer](ctx, c.httpClient, path, request, "creating customer")
}

// Delete implements revenuecat.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, projectID, customerID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/customers/"+customerID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting customer")
}

// ListAliases implements revenuecat.CustomersClient.ListAliases.
func (c *CustomersClient) ListAliases(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerAlias], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/aliases")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.CustomerAlias](ctx, c.httpClient, path, params, "customer aliases")
}

// ListAttributes implements revenuecat.CustomersClient.ListAttributes.
func (c *CustomersClient) ListAttributes(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerAttribute], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/attributes")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.CustomerAttribute](ctx, c.httpClient, path, params, "customer attributes")
}

// SetAttributes implements revenuecat.CustomersClient.SetAttributes.
func (c *CustomersClient) SetAttributes(ctx context.Context, projectID, customerID string, request *revenuecat.CustomerAttributesRequest) (*revenuecat.Page[revenuecat.CustomerAttribute], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/attributes")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, err
	}

	return revenuecat.DecodePage[revenuecat.CustomerAttribute](resp.Body)
}

// ListActiveEntitlements implements revenuecat.CustomersClient.ListActiveEntitlements.
func (c *CustomersClient) ListActiveEntitlements(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerEntitlement], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/active_entitlements")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.CustomerEntitlement](ctx, c.httpClient, path, params, "active entitlements")
}

// ListVirtualCurrencyBalances implements revenuecat.CustomersClient.ListVirtualCurrencyBalances.
func (c *CustomersClient) ListVirtualCurrencyBalances(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrencyBalance], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/virtual_currencies_balances")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.VirtualCurrencyBalance](ctx, c.httpClient, path, params, "virtual currency balances")
}

// ListSubscriptions implements revenuecat.CustomersClient.ListSubscriptions.
func (c *CustomersClient) ListSubscriptions(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Subscription], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/subscriptions")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Subscription](ctx, c.httpClient, path, params, "customer subscriptions")
}

// ListPurchases implements revenuecat.CustomersClient.ListPurchases.
func (c *CustomersClient) ListPurchases(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Purchase], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/purchases")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Purchase](ctx, c.httpClient, path, params, "customer purchases")
}

// ListInvoices implements revenuecat.CustomersClient.ListInvoices.
func (c *CustomersClient) ListInvoices(ctx context.Context, projectID, customerID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Invoice], error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/invoices")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Invoice](ctx, c.httpClient, path, params, "customer invoices")
}

// AssignOffering implements revenuecat.CustomersClient.AssignOffering.
func (c *CustomersClient) AssignOffering(ctx context.Context, projectID, customerID string, request *revenuecat.AssignOfferingRequest) (*revenuecat.Customer, error) {
	path, err := projectPath(projectID, "/customers/"+customerID+"/offering")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Customer](ctx, c.httpClient, path, request, "assigning offering")
}
