package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// EntitlementsClient implements revenuecat.EntitlementsClient.
type EntitlementsClient struct {
	httpClient *http.Client
}

// NewEntitlementsClient creates a new entitlements client.
func NewEntitlementsClient(httpClient *http.Client) *EntitlementsClient {
	return &EntitlementsClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.EntitlementsClient.List.
func (c *EntitlementsClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Entitlement], error) {
	path, err := projectPath(projectID, "/entitlements")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Entitlement](ctx, c.httpClient, path, params, "entitlements")
}

// Get implements revenuecat.EntitlementsClient.Get.
func (c *EntitlementsClient) Get(ctx context.Context, projectID, entitlementID string, params *revenuecat.GetQuery) (*revenuecat.Entitlement, error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Entitlement](ctx, c.httpClient, path, params, "entitlement")
}

// Create implements revenuecat.EntitlementsClient.Create.
func (c *EntitlementsClient) Create(ctx context.Context, projectID string, request *revenuecat.EntitlementCreateRequest) (*revenuecat.Entitlement, error) {
	path, err := projectPath(projectID, "/entitlements")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Entitlement](ctx, c.httpClient, path, request, "creating entitlement")
}

// Update implements revenuecat.EntitlementsClient.Update.
func (c *EntitlementsClient) Update(ctx context.Context, projectID, entitlementID string, request *revenuecat.EntitlementUpdateRequest) (*revenuecat.Entitlement, error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID)
	if err != nil {
		return nil, err
	}

	return updateResource[revenuecat.Entitlement](ctx, c.httpClient, path, request, "updating entitlement")
}

// Delete implements revenuecat.EntitlementsClient.Delete.
func (c *EntitlementsClient) Delete(ctx context.Context, projectID, entitlementID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting entitlement")
}

// ListProducts implements revenuecat.EntitlementsClient.ListProducts.
func (c *EntitlementsClient) ListProducts(ctx context.Context, projectID, entitlementID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Product], error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID+"/products")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Product](ctx, c.httpClient, path, params, "entitlement products")
}

// AttachProducts implements revenuecat.EntitlementsClient.AttachProducts.
func (c *EntitlementsClient) AttachProducts(ctx context.Context, projectID, entitlementID string, productIDs []string) (*revenuecat.Entitlement, error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID+"/actions/attach_products")
	if err != nil {
		return nil, err
	}

	body := map[string][]string{"product_ids": productIDs}

	return postResource[revenuecat.Entitlement](ctx, c.httpClient, path, body, "attaching products to entitlement")
}

// DetachProducts implements revenuecat.EntitlementsClient.DetachProducts.
func (c *EntitlementsClient) DetachProducts(ctx context.Context, projectID, entitlementID string, productIDs []string) (*revenuecat.Entitlement, error) {
	path, err := projectPath(projectID, "/entitlements/"+entitlementID+"/actions/detach_products")
	if err != nil {
		return nil, err
	}

	body := map[string][]string{"product_ids": productIDs}

	return postResource[revenuecat.Entitlement](ctx, c.httpClient, path, body, "detaching products from entitlement")
}
