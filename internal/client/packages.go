package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// PackagesClient implements revenuecat.PackagesClient.
type PackagesClient struct {
	httpClient *http.Client
}

// NewPackagesClient creates a new packages client.
func NewPackagesClient(httpClient *http.Client) *PackagesClient {
	return &PackagesClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.PackagesClient.List. Packages are listed within
// an offering.
func (c *PackagesClient) List(ctx context.Context, projectID, offeringID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Package], error) {
	path, err := projectPath(projectID, "/offerings/"+offeringID+"/packages")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Package](ctx, c.httpClient, path, params, "packages")
}

// Get implements revenuecat.PackagesClient.Get.
func (c *PackagesClient) Get(ctx context.Context, projectID, packageID string, params *revenuecat.GetQuery) (*revenuecat.Package, error) {
	path, err := projectPath(projectID, "/packages/"+packageID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Package](ctx, c.httpClient, path, params, "package")
}

// Create implements revenuecat.PackagesClient.Create.
func (c *PackagesClient) Create(ctx context.Context, projectID, offeringID string, request *revenuecat.PackageCreateRequest) (*revenuecat.Package, error) {
	path, err := projectPath(projectID, "/offerings/"+offeringID+"/packages")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Package](ctx, c.httpClient, path, request, "creating package")
}

// Update implements revenuecat.PackagesClient.Update.
func (c *PackagesClient) Update(ctx context.Context, projectID, packageID string, request *revenuecat.PackageUpdateRequest) (*revenuecat.Package, error) {
	path, err := projectPath(projectID, "/packages/"+packageID)
	if err != nil {
		return nil, err
	}

	return updateResource[revenuecat.Package](ctx, c.httpClient, path, request, "updating package")
}

// Delete implements revenuecat.PackagesClient.Delete.
func (c *PackagesClient) Delete(ctx context.Context, projectID, packageID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/packages/"+packageID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting package")
}

// AttachProducts implements revenuecat.PackagesClient.AttachProducts.
func (c *PackagesClient) AttachProducts(ctx context.Context, projectID, packageID string, products []revenuecat.PackageProductAssociation) (*revenuecat.Package, error) {
	path, err := projectPath(projectID, "/packages/"+packageID+"/actions/attach_products")
	if err != nil {
		return nil, err
	}

	body := map[string][]revenuecat.PackageProductAssociation{"products": products}

	return postResource[revenuecat.Package](ctx, c.httpClient, path, body, "attaching products to package")
}

// DetachProducts implements revenuecat.PackagesClient.DetachProducts.
func (c *PackagesClient) DetachProducts(ctx context.Context, projectID, packageID string, productIDs []string) (*revenuecat.Package, error) {
	path, err := projectPath(projectID, "/packages/"+packageID+"/actions/detach_products")
	if err != nil {
		return nil, err
	}

	body := map[string][]string{"product_ids": productIDs}

	return postResource[revenuecat.Package](ctx, c.httpClient, path, body, "detaching products from package")
}
