package client

import (
	"context"

	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// ProductsClient implements revenuecat.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
	}
}

// List implements revenuecat.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, projectID string, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Product], error) {
	path, err := projectPath(projectID, "/products")
	if err != nil {
		return nil, err
	}

	return listPage[revenuecat.Product](ctx, c.httpClient, path, params, "products")
}

// Get implements revenuecat.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, projectID, productID string, params *revenuecat.GetQuery) (*revenuecat.Product, error) {
	path, err := projectPath(projectID, "/products/"+productID)
	if err != nil {
		return nil, err
	}

	return getResource[revenuecat.Product](ctx, c.httpClient, path, params, "product")
}

// Create implements revenuecat.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, projectID string, request *revenuecat.ProductCreateRequest) (*revenuecat.Product, error) {
	path, err := projectPath(projectID, "/products")
	if err != nil {
		return nil, err
	}

	return postResource[revenuecat.Product](ctx, c.httpClient, path, request, "creating product")
}

// Delete implements revenuecat.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, projectID, productID string) (*revenuecat.DeletedObject, error) {
	path, err := projectPath(projectID, "/products/"+productID)
	if err != nil {
		return nil, err
	}

	return deleteResource(ctx, c.httpClient, path, "deleting product")
}
