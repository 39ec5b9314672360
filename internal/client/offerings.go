package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// OfferingsClient implements revenuecat.OfferingsClient.
type OfferingsClient struct {
	httpClient *http.Client
}

// NewOfferingsClient creates a new offerings client.
func NewOfferingsClient(httpClient *http.Client) *OfferingsClient {
	return &OfferingsClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.OfferingsClient.List.
func (c *OfferingsClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Offering], error) {
	path, err := projectPath(projectID, "/offerings")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Offering](ctx, c.httpClient, path, params, "offerings")
}

// Get implements revenuecat.OfferingsClient.Get.
func (c *OfferingsClient) Get(ctx context.Context, projectID, offeringID string, params *revenuecat.GetQuery) (*revenuecat.Offering, error) {
	path, err := projectPath(projectID, "/offerings/"+offeringID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Offering](ctx, c.httpClient, path, params, "offering")
}

// Create implements revenuecat.OfferingsClient.Create.
func (c *OfferingsClient) Create(ctx context.Context, projectID string, request *revenuecat.OfferingCreateRequest) (*revenuecat.Offering, error) {
	path, err := projectPath(projectID, "/offerings")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Offering](ctx, c.httpClient, path, request, "creating offering")
}

// Update implements revenuecat.OfferingsClient.Update.
func (c *OfferingsClient) Update(ctx context.Context, projectID, offeringID string, request *revenuecat.OfferingUpdateRequest) (*revenuecat.Offering, error) {
	path, err := projectPath(projectID, "/offerings/"+offeringID)
	if err != nil {
		return nil, err
	}

	return updateResource[revenuecat.Offering](ctx, c.httpClient, path, request, "updating offering")
}

// Delete implements revenuecat.OfferingsClient.Delete.
func (c *OfferingsClient) Delete(ctx context.Context, projectID, offeringID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/offerings/"+offeringID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting offering")
}
