package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// ProjectsClient implements revenuecat.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Project], error) {
	return listPage[revenuecat.Project](ctx, c.httpClient, "/projects", params, "projects")
}
