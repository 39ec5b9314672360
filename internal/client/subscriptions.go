package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// SubscriptionsClient implements revenuecat.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
	}
}

// Get implements revenuecat.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, projectID, subscriptionID string, params *revenuecat.GetQuery) (*revenuecat.Subscription, error) {
	path, err := projectPath(projectID, "/subscriptions/"+subscriptionID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Subscription](ctx, c.httpClient, path, params, "subscription")
}

// Cancel implements revenuecat.SubscriptionsClient.Cancel. Cancelling stops
// auto-renewal; access continues until the current period ends.
func (c *SubscriptionsClient) Cancel(ctx context.Context, projectID, subscriptionID string) (*revenuecat.Subscription, error) {
	path, err := projectPath(projectID, "/subscriptions/"+subscriptionID+"/actions/cancel")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Subscription](ctx, c.httpClient, path, nil, "cancelling subscription")
}

// Refund implements revenuecat.SubscriptionsClient.Refund. Only Web Billing
// subscriptions can be refunded through the API.
func (c *SubscriptionsClient) Refund(ctx context.Context, projectID, subscriptionID string) (*revenuecat.Subscription, error) {
	path, err := projectPath(projectID, "/subscriptions/"+subscriptionID+"/actions/refund")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Subscription](ctx, c.httpClient, path, nil, "refunding subscription")
}

// ListEntitlements implements revenuecat.SubscriptionsClient.ListEntitlements.
func (c *SubscriptionsClient) ListEntitlements(ctx context.Context, projectID, subscriptionID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Entitlement], error) {
	path, err := projectPath(projectID, "/subscriptions/"+subscriptionID+"/entitlements")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Entitlement](ctx, c.httpClient, path, params, "subscription entitlements")
}
