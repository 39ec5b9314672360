package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// AppsClient implements revenuecat.AppsClient.
type AppsClient struct {
	httpClient *http.Client
}

// NewAppsClient creates a new apps client.
func NewAppsClient(httpClient *http.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.AppsClient.List.
func (c *AppsClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.App], error) {
	path, err := projectPath(projectID, "/apps")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.App](ctx, c.httpClient, path, params, "apps")
}

// Get implements revenuecat.AppsClient.Get.
func (c *AppsClient) Get(ctx context.Context, projectID, appID string) (*revenuecat.App, error) {
	path, err := projectPath(projectID, "/apps/"+appID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.App](ctx, c.httpClient, path, nil, "app")
}

// Create implements revenuecat.AppsClient.Create.
func (c *AppsClient) Create(ctx context.Context, projectID string, request *revenuecat.AppCreateRequest) (*revenuecat.App, error) {
	path, err := projectPath(projectID, "/apps")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.App](ctx, c.httpClient, path, request, "creating app")
}

// Update implements revenuecat.AppsClient.Update.
func (c *AppsClient) Update(ctx context.Context, projectID, appID string, request *revenuecat.AppUpdateRequest) (*revenuecat.App, error) {
	path, err := projectPath(projectID, "/apps/"+appID)
	if err != nil {
		return nil, err
	}

	return updateResource[revenuecat.App](ctx, c.httpClient, path, request, "updating app")
}

// Delete implements revenuecat.AppsClient.Delete.
func (c *AppsClient) Delete(ctx context.Context, projectID, appID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/apps/"+appID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting app")
}
