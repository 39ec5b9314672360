package client

import (
	"errors"

	"github.com/frknlkn/revenuecat-go/internal/auth"
	"github.com/frknlkn/revenuecat-go/internal/http"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Client implements the revenuecat.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       revenuecat.Logger

	// Resource clients
	projects          revenuecat.ProjectsClient
	apps              revenuecat.AppsClient
	customers         revenuecat.CustomersClient
	products          revenuecat.ProductsClient
	entitlements      revenuecat.EntitlementsClient
	offerings         revenuecat.OfferingsClient
	packages          revenuecat.PackagesClient
	subscriptions     revenuecat.SubscriptionsClient
	purchases         revenuecat.PurchasesClient
	virtualCurrencies revenuecat.VirtualCurrenciesClient
	metrics           revenuecat.MetricsClient
}

// New creates a client from configuration. The endpoint must already be
// normalized (see pkg/rcclient, which validates the config and fills
// defaults before calling this).
func New(config *revenuecat.Config) (*Client, error) {
	if config == nil {
		return nil, revenuecat.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	if config.APIKey == "" {
		return nil, revenuecat.ErrAPIKeyRequired
	}

	tokenManager := auth.NewStaticTokenManager(config.APIKey)

	options := []http.Option{
		http.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		options = append(options, http.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		options = append(options, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		options = append(options, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		backend, err := revenuecat.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		manager := revenuecat.NewCacheManager(backend, config.Cache.Policy)

		ttl := revenuecat.DefaultCacheOptions().DefaultTTL
		if config.Cache.Options != nil && config.Cache.Options.DefaultTTL > 0 {
			ttl = config.Cache.Options.DefaultTTL
		}

		options = append(options, http.WithCache(manager, ttl))
	}

	httpClient := http.NewClient(config.APIEndpoint, tokenManager, options...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.apps = NewAppsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.entitlements = NewEntitlementsClient(c.httpClient)
	c.offerings = NewOfferingsClient(c.httpClient)
	c.packages = NewPackagesClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.purchases = NewPurchasesClient(c.httpClient)
	c.virtualCurrencies = NewVirtualCurrenciesClient(c.httpClient)
	c.metrics = NewMetricsClient(c.httpClient)
}

// Projects returns the projects client.
func (c *Client) Projects() revenuecat.ProjectsClient {
	return c.projects
}

// Apps returns the apps client.
func (c *Client) Apps() revenuecat.AppsClient {
	return c.apps
}

// Customers returns the customers client.
func (c *Client) Customers() revenuecat.CustomersClient {
	return c.customers
}

// Products returns the products client.
func (c *Client) Products() revenuecat.ProductsClient {
	return c.products
}

// Entitlements returns the entitlements client.
func (c *Client) Entitlements() revenuecat.EntitlementsClient {
	return c.entitlements
}

// Offerings returns the offerings client.
func (c *Client) Offerings() revenuecat.OfferingsClient {
	return c.offerings
}

// Packages returns the packages client.
func (c *Client) Packages() revenuecat.PackagesClient {
	return c.packages
}

// Subscriptions returns the subscriptions client.
func (c *Client) Subscriptions() revenuecat.SubscriptionsClient {
	return c.subscriptions
}

// Purchases returns the purchases client.
func (c *Client) Purchases() revenuecat.PurchasesClient {
	return c.purchases
}

// VirtualCurrencies returns the virtual currencies client.
func (c *Client) VirtualCurrencies() revenuecat.VirtualCurrenciesClient {
	return c.virtualCurrencies
}

// Metrics returns the metrics client.
func (c *Client) Metrics() revenuecat.MetricsClient {
	return c.metrics
}
