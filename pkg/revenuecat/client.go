package revenuecat

import (
	"context"
	"time"
)

// ProjectsClient provides access to project resources.
type ProjectsClient interface {
	List(ctx context.Context, params *ListQuery) (*Page[Project], error)
}

// AppsClient provides access to app resources within a project.
type AppsClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[App], error)
	Get(ctx context.Context, projectID, appID string) (*App, error)
	Create(ctx context.Context, projectID string, request *AppCreateRequest) (*App, error)
	Update(ctx context.Context, projectID, appID string, request *AppUpdateRequest) (*App, error)
	Delete(ctx context.Context, projectID, appID string) (*DeletedObject, error)
}

// CustomersClient provides access to customer resources within a project.
type CustomersClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[Customer], error)
	Get(ctx context.Context, projectID, customerID string, params *GetQuery) (*Customer, error)
	Create(ctx context.Context, projectID string, request *CustomerCreateRequest) (*Customer, error)
	Delete(ctx context.Context, projectID, customerID string) (*DeletedObject, error)
	ListAliases(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[CustomerAlias], error)
	ListAttributes(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[CustomerAttribute], error)
	SetAttributes(ctx context.Context, projectID, customerID string, request *CustomerAttributesRequest) (*Page[CustomerAttribute], error)
	ListActiveEntitlements(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[CustomerEntitlement], error)
	ListVirtualCurrencyBalances(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[VirtualCurrencyBalance], error)
	ListSubscriptions(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[Subscription], error)
	ListPurchases(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[Purchase], error)
	ListInvoices(ctx context.Context, projectID, customerID string, params *ListQuery) (*Page[Invoice], error)
	AssignOffering(ctx context.Context, projectID, customerID string, request *AssignOfferingRequest) (*Customer, error)
}

// ProductsClient provides access to product resources within a project.
type ProductsClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[Product], error)
	Get(ctx context.Context, projectID, productID string, params *GetQuery) (*Product, error)
	Create(ctx context.Context, projectID string, request *ProductCreateRequest) (*Product, error)
	Delete(ctx context.Context, projectID, productID string) (*DeletedObject, error)
}

// EntitlementsClient provides access to entitlement resources within a project.
type EntitlementsClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[Entitlement], error)
	Get(ctx context.Context, projectID, entitlementID string, params *GetQuery) (*Entitlement, error)
	Create(ctx context.Context, projectID string, request *EntitlementCreateRequest) (*Entitlement, error)
	Update(ctx context.Context, projectID, entitlementID string, request *EntitlementUpdateRequest) (*Entitlement, error)
	Delete(ctx context.Context, projectID, entitlementID string) (*DeletedObject, error)
	ListProducts(ctx context.Context, projectID, entitlementID string, params *ListQuery) (*Page[Product], error)
	AttachProducts(ctx context.Context, projectID, entitlementID string, productIDs []string) (*Entitlement, error)
	DetachProducts(ctx context.Context, projectID, entitlementID string, productIDs []string) (*Entitlement, error)
}

// OfferingsClient provides access to offering resources within a project.
type OfferingsClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[Offering], error)
	Get(ctx context.Context, projectID, offeringID string, params *GetQuery) (*Offering, error)
	Create(ctx context.Context, projectID string, request *OfferingCreateRequest) (*Offering, error)
	Update(ctx context.Context, projectID, offeringID string, request *OfferingUpdateRequest) (*Offering, error)
	Delete(ctx context.Context, projectID, offeringID string) (*DeletedObject, error)
}

// PackagesClient provides access to package resources within a project.
type PackagesClient interface {
	List(ctx context.Context, projectID, offeringID string, params *ListQuery) (*Page[Package], error)
	Get(ctx context.Context, projectID, packageID string, params *GetQuery) (*Package, error)
	Create(ctx context.Context, projectID, offeringID string, request *PackageCreateRequest) (*Package, error)
	Update(ctx context.Context, projectID, packageID string, request *PackageUpdateRequest) (*Package, error)
	Delete(ctx context.Context, projectID, packageID string) (*DeletedObject, error)
	AttachProducts(ctx context.Context, projectID, packageID string, products []PackageProductAssociation) (*Package, error)
	DetachProducts(ctx context.Context, projectID, packageID string, productIDs []string) (*Package, error)
}

// SubscriptionsClient provides access to subscription resources within a project.
type SubscriptionsClient interface {
	Get(ctx context.Context, projectID, subscriptionID string, params *GetQuery) (*Subscription, error)
	Cancel(ctx context.Context, projectID, subscriptionID string) (*Subscription, error)
	Refund(ctx context.Context, projectID, subscriptionID string) (*Subscription, error)
	ListEntitlements(ctx context.Context, projectID, subscriptionID string, params *ListQuery) (*Page[Entitlement], error)
}

// PurchasesClient provides access to one-time purchase resources within a project.
type PurchasesClient interface {
	Get(ctx context.Context, projectID, purchaseID string, params *GetQuery) (*Purchase, error)
	Refund(ctx context.Context, projectID, purchaseID string) (*Purchase, error)
	ListEntitlements(ctx context.Context, projectID, purchaseID string, params *ListQuery) (*Page[Entitlement], error)
}

// VirtualCurrenciesClient provides access to a project's virtual currencies.
type VirtualCurrenciesClient interface {
	List(ctx context.Context, projectID string, params *ListQuery) (*Page[VirtualCurrency], error)
	Get(ctx context.Context, projectID, currencyCode string) (*VirtualCurrency, error)
}

// MetricsClient provides access to project-level charts metrics.
type MetricsClient interface {
	GetOverview(ctx context.Context, projectID string) (*OverviewMetrics, error)
}

// Client is the full RevenueCat API v2 surface.
type Client interface {
	Projects() ProjectsClient
	Apps() AppsClient
	Customers() CustomersClient
	Products() ProductsClient
	Entitlements() EntitlementsClient
	Offerings() OfferingsClient
	Packages() PackagesClient
	Subscriptions() SubscriptionsClient
	Purchases() PurchasesClient
	VirtualCurrencies() VirtualCurrenciesClient
	Metrics() MetricsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a revenuecat.Client.
//
// APIKey is the project's secret API key (sk_...) sent as a Bearer token on
// every request. Per-request timeouts should be controlled via the context
// passed to client methods; RetryMax/RetryWaitMin/RetryWaitMax tune the
// transport's handling of 429 and 5xx responses. Retries never span a page
// traversal: each HTTP request is retried in isolation.
type Config struct {
	// APIEndpoint: base URL for the API. Defaults to the public endpoint
	// when empty; rcclient.New normalizes trailing slashes and scheme.
	APIEndpoint string

	// APIKey: secret API key used as a static Bearer token.
	APIKey string

	// RetryMax: maximum number of retries for transient failures (429, >=500,
	// connection errors). If 0, the transport default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Cache: optional response cache applied to GET requests. See
	// NewCacheFromConfig for the available backends. Paginated list paths are
	// excluded by the default caching policy so traversals always observe
	// live cursors.
	Cache *CacheConfig
}
