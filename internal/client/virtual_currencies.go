package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// VirtualCurrenciesClient implements revenuecat.VirtualCurrenciesClient.
type VirtualCurrenciesClient struct {
	httpClient *http.Client
}

// NewVirtualCurrenciesClient creates a new virtual currencies client.
func NewVirtualCurrenciesClient(httpClient *http.Client) *VirtualCurrenciesClient {
	return &VirtualCurrenciesClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.VirtualCurrenciesClient.List.
func (c *VirtualCurrenciesClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrency], error) {
	path, err := projectPath(projectID, "/virtual_currencies")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.VirtualCurrency](ctx, c.httpClient, path, params, "virtual currencies")
}

// Get implements revenuecat.VirtualCurrenciesClient.Get.
func (c *VirtualCurrenciesClient) Get(ctx context.Context, projectID, currencyCode string) (*revenuecat.VirtualCurrency, error) {
	path, err := projectPath(projectID, "/virtual_currencies/"+currencyCode)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.VirtualCurrency](ctx, c.httpClient, path, nil, "virtual currency")
}
