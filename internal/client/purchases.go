package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// PurchasesClient implements revenuecat.PurchasesClient.
type PurchasesClient struct {
	httpClient *http.Client
}

// NewPurchasesClient creates a new purchases client.
func NewPurchasesClient(httpClient *http.Client) *PurchasesClient {
	return &PurchasesClient{
		httpClient: httpClient,
	}
}

// Get implements revenuecat.PurchasesClient.Get.
func (c *PurchasesClient) Get(ctx context.Context, projectID, purchaseID string, params *revenuecat.GetQuery) (*revenuecat.Purchase, error) {
	path, err := projectPath(projectID, "/purchases/"+purchaseID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Purchase](ctx, c.httpClient, path, params, "purchase")
}

// Refund implements revenuecat.PurchasesClient.Refund. Only Web Billing
// purchases can be refunded through the API.
func (c *PurchasesClient) Refund(ctx context.Context, projectID, purchaseID string) (*revenuecat.Purchase, error) {
	path, err := projectPath(projectID, "/purchases/"+purchaseID+"/actions/refund")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Purchase](ctx, c.httpClient, path, nil, "refunding purchase")
}

// ListEntitlements implements revenuecat.PurchasesClient.ListEntitlements.
func (c *PurchasesClient) ListEntitlements(ctx context.Context, projectID, purchaseID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Entitlement], error) {
	path, err := projectPath(projectID, "/purchases/"+purchaseID+"/entitlements")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Entitlement](ctx, c.httpClient, path, params, "purchase entitlements")
}
