package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// MetricsClient implements revenuecat.MetricsClient.
type MetricsClient struct {
	httpClient *http.Client
}

// NewMetricsClient creates a new metrics client.
func NewMetricsClient(httpClient *http.Client) *MetricsClient {
	return &MetricsClient{
		httpClient: httpClient,
	}
}

// GetOverview implements revenuecat.MetricsClient.GetOverview.
func (c *MetricsClient) GetOverview(ctx context.Context, projectID string) (*revenuecat.OverviewMetrics, error) {
	path, err := projectPath(projectID, "/metrics/overview")
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.OverviewMetrics](ctx, c.httpClient, path, nil, "overview metrics")
}
