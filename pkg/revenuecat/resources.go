package revenuecat

import "encoding/json"

// Project represents a RevenueCat project.
type Project struct {
	Object    string    `json:"object"     yaml:"object"`
	ID        string    `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
}

// DeletedObject is returned by delete endpoints.
type DeletedObject struct {
	Object    string    `json:"object"     yaml:"object"`
	ID        string    `json:"id"         yaml:"id"`
	DeletedAt Timestamp `json:"deleted_at" yaml:"deleted_at"`
}

// App represents a store-specific app within a project.
type App struct {
	Object    string    `json:"object"               yaml:"object"`
	ID        string    `json:"id"                   yaml:"id"`
	Name      string    `json:"name"                 yaml:"name"`
	CreatedAt Timestamp `json:"created_at"           yaml:"created_at"`
	Type      Store     `json:"type"                 yaml:"type"`
	ProjectID string    `json:"project_id"           yaml:"project_id"`

	Amazon     *AmazonApp     `json:"amazon,omitempty"      yaml:"amazon,omitempty"`
	AppStore   *AppStoreApp   `json:"app_store,omitempty"   yaml:"app_store,omitempty"`
	PlayStore  *PlayStoreApp  `json:"play_store,omitempty"  yaml:"play_store,omitempty"`
	Stripe     *StripeApp     `json:"stripe,omitempty"      yaml:"stripe,omitempty"`
	WebBilling *WebBillingApp `json:"rc_billing,omitempty"  yaml:"rc_billing,omitempty"`
}

// AmazonApp holds Amazon Appstore configuration.
type AmazonApp struct {
	PackageName string `json:"package_name" yaml:"package_name"`
}

// AppStoreApp holds Apple App Store configuration.
type AppStoreApp struct {
	BundleID string `json:"bundle_id" yaml:"bundle_id"`
}

// PlayStoreApp holds Google Play Store configuration.
type PlayStoreApp struct {
	PackageName string `json:"package_name" yaml:"package_name"`
}

// StripeApp holds Stripe configuration.
type StripeApp struct {
	StripeAccountID string `json:"stripe_account_id" yaml:"stripe_account_id"`
}

// WebBillingApp holds Web Billing configuration.
type WebBillingApp struct {
	AppName        string `json:"app_name"                  yaml:"app_name"`
	DefaultCurrency string `json:"default_currency,omitempty" yaml:"default_currency,omitempty"`
}

// AppCreateRequest represents a request to create an app.
type AppCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	Type Store  `json:"type" yaml:"type"`

	Amazon     *AmazonApp     `json:"amazon,omitempty"     yaml:"amazon,omitempty"`
	AppStore   *AppStoreApp   `json:"app_store,omitempty"  yaml:"app_store,omitempty"`
	PlayStore  *PlayStoreApp  `json:"play_store,omitempty" yaml:"play_store,omitempty"`
	Stripe     *StripeApp     `json:"stripe,omitempty"     yaml:"stripe,omitempty"`
	WebBilling *WebBillingApp `json:"rc_billing,omitempty" yaml:"rc_billing,omitempty"`
}

// AppUpdateRequest represents a request to update an app. Nil fields are left
// unchanged.
type AppUpdateRequest struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	Amazon     *AmazonApp     `json:"amazon,omitempty"     yaml:"amazon,omitempty"`
	AppStore   *AppStoreApp   `json:"app_store,omitempty"  yaml:"app_store,omitempty"`
	PlayStore  *PlayStoreApp  `json:"play_store,omitempty" yaml:"play_store,omitempty"`
	Stripe     *StripeApp     `json:"stripe,omitempty"     yaml:"stripe,omitempty"`
	WebBilling *WebBillingApp `json:"rc_billing,omitempty" yaml:"rc_billing,omitempty"`
}

// Customer represents an end user of an app.
type Customer struct {
	Object      string    `json:"object"       yaml:"object"`
	ID          string    `json:"id"           yaml:"id"`
	ProjectID   string    `json:"project_id"   yaml:"project_id"`
	FirstSeenAt Timestamp `json:"first_seen_at" yaml:"first_seen_at"`
	LastSeenAt  Timestamp `json:"last_seen_at"  yaml:"last_seen_at"`

	// ActiveEntitlements is present only when requested via expand.
	ActiveEntitlements *Page[CustomerEntitlement] `json:"active_entitlements,omitempty" yaml:"active_entitlements,omitempty"`
	// Attributes is present only when requested via expand.
	Attributes *Page[CustomerAttribute] `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// CustomerCreateRequest represents a request to create a customer.
type CustomerCreateRequest struct {
	ID         string                    `json:"id"                   yaml:"id"`
	Attributes []CustomerAttributeValue  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// CustomerAlias represents an alternate app user ID attached to a customer.
type CustomerAlias struct {
	Object    string    `json:"object"     yaml:"object"`
	ID        string    `json:"id"         yaml:"id"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
}

// CustomerAttribute represents a single reserved or custom attribute.
type CustomerAttribute struct {
	Object    string    `json:"object"     yaml:"object"`
	Name      string    `json:"name"       yaml:"name"`
	Value     string    `json:"value"      yaml:"value"`
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// CustomerAttributeValue is the write shape for setting attributes.
type CustomerAttributeValue struct {
	Name string `json:"name" yaml:"name"`
	// Value is nullable on the wire: explicit null deletes the attribute.
	Value Nullable[string] `json:"value" yaml:"value"`
}

// CustomerAttributesRequest represents a request to set customer attributes.
type CustomerAttributesRequest struct {
	Attributes []CustomerAttributeValue `json:"attributes" yaml:"attributes"`
}

// CustomerEntitlement represents an entitlement a customer actively holds.
type CustomerEntitlement struct {
	Object        string    `json:"object"         yaml:"object"`
	EntitlementID string    `json:"entitlement_id" yaml:"entitlement_id"`
	ExpiresAt     *Timestamp `json:"expires_at"    yaml:"expires_at"`
}

// AssignOfferingRequest assigns or clears a customer's offering override.
//
// The wire format is three-state: an absent offering_id leaves the override
// untouched, an explicit null clears it, and a value assigns that offering.
// MarshalJSON preserves all three states; do not replace the Nullable with a
// plain pointer.
type AssignOfferingRequest struct {
	OfferingID Nullable[string]
}

// MarshalJSON implements json.Marshaler.
func (r *AssignOfferingRequest) MarshalJSON() ([]byte, error) {
	if !r.OfferingID.IsSet() {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]Nullable[string]{
		"offering_id": r.OfferingID,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AssignOfferingRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	value, ok := raw["offering_id"]
	if !ok {
		r.OfferingID = Nullable[string]{}

		return nil
	}

	return r.OfferingID.UnmarshalJSON(value)
}

// Product represents a store product registered with a project.
type Product struct {
	Object          string      `json:"object"           yaml:"object"`
	ID              string      `json:"id"               yaml:"id"`
	StoreIdentifier string      `json:"store_identifier" yaml:"store_identifier"`
	Type            ProductType `json:"type"             yaml:"type"`
	CreatedAt       Timestamp   `json:"created_at"       yaml:"created_at"`
	AppID           string      `json:"app_id"           yaml:"app_id"`
	DisplayName     string      `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	Subscription *SubscriptionProductDetail `json:"subscription,omitempty" yaml:"subscription,omitempty"`
	OneTime      *OneTimeProductDetail      `json:"one_time,omitempty"     yaml:"one_time,omitempty"`

	// App is present only when requested via expand.
	App *App `json:"app,omitempty" yaml:"app,omitempty"`
}

// SubscriptionProductDetail holds subscription-specific product data.
type SubscriptionProductDetail struct {
	// Durations are ISO 8601 period strings, e.g. "P1M".
	Duration            string `json:"duration,omitempty"              yaml:"duration,omitempty"`
	GracePeriodDuration string `json:"grace_period_duration,omitempty" yaml:"grace_period_duration,omitempty"`
	TrialDuration       string `json:"trial_duration,omitempty"        yaml:"trial_duration,omitempty"`
}

// OneTimeProductDetail holds one-time-purchase-specific product data.
type OneTimeProductDetail struct {
	IsConsumable bool `json:"is_consumable" yaml:"is_consumable"`
}

// ProductCreateRequest represents a request to create a product.
type ProductCreateRequest struct {
	StoreIdentifier string      `json:"store_identifier"       yaml:"store_identifier"`
	Type            ProductType `json:"type"                   yaml:"type"`
	AppID           string      `json:"app_id"                 yaml:"app_id"`
	DisplayName     string      `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// Entitlement represents a level of access products unlock.
type Entitlement struct {
	Object      string    `json:"object"       yaml:"object"`
	ProjectID   string    `json:"project_id"   yaml:"project_id"`
	ID          string    `json:"id"           yaml:"id"`
	LookupKey   string    `json:"lookup_key"   yaml:"lookup_key"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	CreatedAt   Timestamp `json:"created_at"   yaml:"created_at"`

	// Products is present only when requested via expand.
	Products *Page[Product] `json:"products,omitempty" yaml:"products,omitempty"`
}

// EntitlementCreateRequest represents a request to create an entitlement.
type EntitlementCreateRequest struct {
	LookupKey   string `json:"lookup_key"   yaml:"lookup_key"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// EntitlementUpdateRequest represents a request to update an entitlement.
type EntitlementUpdateRequest struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Offering represents a configured set of packages presented to customers.
type Offering struct {
	Object      string            `json:"object"             yaml:"object"`
	ID          string            `json:"id"                 yaml:"id"`
	LookupKey   string            `json:"lookup_key"         yaml:"lookup_key"`
	DisplayName string            `json:"display_name"       yaml:"display_name"`
	IsCurrent   bool              `json:"is_current"         yaml:"is_current"`
	CreatedAt   Timestamp         `json:"created_at"         yaml:"created_at"`
	ProjectID   string            `json:"project_id"         yaml:"project_id"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Packages is present only when requested via expand.
	Packages *Page[Package] `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// OfferingCreateRequest represents a request to create an offering.
type OfferingCreateRequest struct {
	LookupKey   string            `json:"lookup_key"         yaml:"lookup_key"`
	DisplayName string            `json:"display_name"       yaml:"display_name"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// OfferingUpdateRequest represents a request to update an offering. Nil
// fields are left unchanged.
type OfferingUpdateRequest struct {
	DisplayName *string           `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	IsCurrent   *bool             `json:"is_current,omitempty"   yaml:"is_current,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
}

// Package represents a purchasable slot within an offering.
type Package struct {
	Object      string    `json:"object"       yaml:"object"`
	ID          string    `json:"id"           yaml:"id"`
	LookupKey   string    `json:"lookup_key"   yaml:"lookup_key"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Position    int       `json:"position"     yaml:"position"`
	CreatedAt   Timestamp `json:"created_at"   yaml:"created_at"`

	// Products is present only when requested via expand.
	Products *Page[PackageProduct] `json:"products,omitempty" yaml:"products,omitempty"`
}

// PackageProduct associates a product with a package for an eligibility group.
type PackageProduct struct {
	Object             string   `json:"object"              yaml:"object"`
	Product            *Product `json:"product"             yaml:"product"`
	EligibilityCriteria string  `json:"eligibility_criteria" yaml:"eligibility_criteria"`
}

// PackageCreateRequest represents a request to create a package.
type PackageCreateRequest struct {
	LookupKey   string `json:"lookup_key"         yaml:"lookup_key"`
	DisplayName string `json:"display_name"       yaml:"display_name"`
	Position    *int   `json:"position,omitempty" yaml:"position,omitempty"`
}

// PackageUpdateRequest represents a request to update a package. Nil fields
// are left unchanged.
type PackageUpdateRequest struct {
	DisplayName *string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Position    *int    `json:"position,omitempty"     yaml:"position,omitempty"`
}

// PackageProductAssociation is the write shape for attaching products to a
// package.
type PackageProductAssociation struct {
	ProductID           string `json:"product_id"           yaml:"product_id"`
	EligibilityCriteria string `json:"eligibility_criteria" yaml:"eligibility_criteria"`
}

// Subscription represents a customer's recurring purchase of a product.
type Subscription struct {
	Object                  string             `json:"object"                     yaml:"object"`
	ID                      string             `json:"id"                         yaml:"id"`
	CustomerID              string             `json:"customer_id"                yaml:"customer_id"`
	OriginalCustomerID      string             `json:"original_customer_id"       yaml:"original_customer_id"`
	ProductID               string             `json:"product_id"                 yaml:"product_id"`
	StartsAt                Timestamp          `json:"starts_at"                  yaml:"starts_at"`
	CurrentPeriodStartsAt   Timestamp          `json:"current_period_starts_at"   yaml:"current_period_starts_at"`
	CurrentPeriodEndsAt     *Timestamp         `json:"current_period_ends_at"     yaml:"current_period_ends_at"`
	GivesAccess             bool               `json:"gives_access"               yaml:"gives_access"`
	PendingPayment          bool               `json:"pending_payment"            yaml:"pending_payment"`
	AutoRenewalStatus       AutoRenewalStatus  `json:"auto_renewal_status"        yaml:"auto_renewal_status"`
	Status                  SubscriptionStatus `json:"status"                     yaml:"status"`
	TotalRevenueInUSD       MonetaryAmount     `json:"total_revenue_in_usd"       yaml:"total_revenue_in_usd"`
	PresentedOfferingID     string             `json:"presented_offering_id"      yaml:"presented_offering_id"`
	Environment             Environment        `json:"environment"                yaml:"environment"`
	Store                   Store              `json:"store"                      yaml:"store"`
	StoreSubscriptionID     string             `json:"store_subscription_identifier" yaml:"store_subscription_identifier"`
	Ownership               OwnershipType      `json:"ownership"                  yaml:"ownership"`
	Country                 string             `json:"country,omitempty"          yaml:"country,omitempty"`
	ManagementURL           string             `json:"management_url,omitempty"   yaml:"management_url,omitempty"`
	PendingChanges          *PendingChanges    `json:"pending_changes,omitempty"  yaml:"pending_changes,omitempty"`

	// Entitlements is present only when requested via expand.
	Entitlements *Page[Entitlement] `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
}

// PendingChanges describes a product change scheduled for the next renewal.
type PendingChanges struct {
	Product *Product `json:"product,omitempty" yaml:"product,omitempty"`
}

// Purchase represents a customer's one-time purchase.
type Purchase struct {
	Object              string         `json:"object"                    yaml:"object"`
	ID                  string         `json:"id"                        yaml:"id"`
	CustomerID          string         `json:"customer_id"               yaml:"customer_id"`
	OriginalCustomerID  string         `json:"original_customer_id"      yaml:"original_customer_id"`
	ProductID           string         `json:"product_id"                yaml:"product_id"`
	PurchasedAt         Timestamp      `json:"purchased_at"              yaml:"purchased_at"`
	RevenueInUSD        MonetaryAmount `json:"revenue_in_usd"            yaml:"revenue_in_usd"`
	Quantity            int            `json:"quantity"                  yaml:"quantity"`
	Status              PurchaseStatus `json:"status"                    yaml:"status"`
	PresentedOfferingID string         `json:"presented_offering_id"     yaml:"presented_offering_id"`
	Environment         Environment    `json:"environment"               yaml:"environment"`
	Store               Store          `json:"store"                     yaml:"store"`
	StorePurchaseID     string         `json:"store_purchase_identifier" yaml:"store_purchase_identifier"`
	Ownership           OwnershipType  `json:"ownership"                 yaml:"ownership"`
	Country             string         `json:"country,omitempty"         yaml:"country,omitempty"`

	// Entitlements is present only when requested via expand.
	Entitlements *Page[Entitlement] `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
}

// Invoice represents a Web Billing invoice issued to a customer.
type Invoice struct {
	Object      string            `json:"object"                yaml:"object"`
	ID          string            `json:"id"                    yaml:"id"`
	TotalAmount MonetaryAmount    `json:"total_amount"          yaml:"total_amount"`
	LineItems   []InvoiceLineItem `json:"line_items"            yaml:"line_items"`
	IssuedAt    Timestamp         `json:"issued_at"             yaml:"issued_at"`
	PaidAt      *Timestamp        `json:"paid_at"               yaml:"paid_at"`
	InvoiceURL  string            `json:"invoice_url,omitempty" yaml:"invoice_url,omitempty"`
}

// InvoiceLineItem is a single line on an invoice.
type InvoiceLineItem struct {
	Description string         `json:"description"  yaml:"description"`
	Amount      MonetaryAmount `json:"amount"       yaml:"amount"`
	ProductID   string         `json:"product_id"   yaml:"product_id"`
	Quantity    int            `json:"quantity"     yaml:"quantity"`
}

// VirtualCurrency represents a virtual currency configured on a project.
type VirtualCurrency struct {
	Object      string `json:"object"                yaml:"object"`
	Code        string `json:"code"                  yaml:"code"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// VirtualCurrencyBalance represents a customer's balance of one currency.
type VirtualCurrencyBalance struct {
	Object   string           `json:"object"   yaml:"object"`
	Currency *VirtualCurrency `json:"currency" yaml:"currency"`
	Balance  int64            `json:"balance"  yaml:"balance"`
}

// OverviewMetrics represents the project overview metrics response.
type OverviewMetrics struct {
	Object  string           `json:"object"  yaml:"object"`
	Metrics []OverviewMetric `json:"metrics" yaml:"metrics"`
}

// OverviewMetric is one headline metric (active trials, active
// subscriptions, MRR, revenue, and so on).
type OverviewMetric struct {
	ID          string     `json:"id"              yaml:"id"`
	Name        string     `json:"name"            yaml:"name"`
	Description string     `json:"description"     yaml:"description"`
	Unit        string     `json:"unit"            yaml:"unit"`
	Period      string     `json:"period"          yaml:"period"`
	Value       float64    `json:"value"           yaml:"value"`
	LastUpdated *Timestamp `json:"last_updated_at" yaml:"last_updated_at"`
}
