package revenuecat

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp wraps time.Time and marshals as milliseconds since the Unix
// epoch, which is how the RevenueCat API represents every timestamp field.
type Timestamp struct {
	time.Time
}

// TimestampOf creates a Timestamp from a time.Time, truncated to millisecond
// precision to match the wire format.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond)}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}

		return nil
	}

	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, data)
	}

	t.Time = time.UnixMilli(millis).UTC()

	return nil
}

// Page represents one bounded batch of items returned by a single call to a
// list endpoint, together with the server-issued continuation reference.
type Page[T any] struct {
	// Object is always "list" on the wire.
	Object string `json:"object" yaml:"object"`
	// Items holds the page's items in server order.
	Items []T `json:"items" yaml:"items"`
	// NextPage is the full URL of the next page, or nil on the final page.
	// Its query string carries the next starting_after value.
	NextPage *string `json:"next_page" yaml:"next_page"`
	// URL is the path of the request that produced this page.
	URL string `json:"url" yaml:"url"`
}

// HasMore reports whether the server indicated a further page. The absence of
// next_page is the sole termination signal; an empty Items slice alone does
// not mean the list is exhausted.
func (p *Page[T]) HasMore() bool {
	return p.NextPage != nil
}

// MonetaryAmount represents a money value with its currency.
type MonetaryAmount struct {
	Currency string  `json:"currency" yaml:"currency"`
	Gross    float64 `json:"gross"    yaml:"gross"`
	Taxes    float64 `json:"taxes"    yaml:"taxes"`
	Proceeds float64 `json:"proceeds" yaml:"proceeds"`
}

// Environment identifies the store environment a transaction occurred in.
type Environment string

// Environments.
const (
	EnvironmentProduction Environment = "production"
	EnvironmentSandbox    Environment = "sandbox"
)

// Store identifies the store a product or transaction belongs to.
type Store string

// Stores.
const (
	StoreAmazon      Store = "amazon"
	StoreAppStore    Store = "app_store"
	StoreMacAppStore Store = "mac_app_store"
	StorePlayStore   Store = "play_store"
	StorePromotional Store = "promotional"
	StoreStripe      Store = "stripe"
	StoreWebBilling  Store = "rc_billing"
	StoreRoku        Store = "roku"
)

// OwnershipType describes how a customer came to own an entitlement.
type OwnershipType string

// Ownership types.
const (
	OwnershipPurchased    OwnershipType = "purchased"
	OwnershipFamilyShared OwnershipType = "family_shared"
)

// AutoRenewalStatus describes the renewal state of a subscription.
type AutoRenewalStatus string

// Auto-renewal statuses.
const (
	AutoRenewalWillRenew           AutoRenewalStatus = "will_renew"
	AutoRenewalWillNotRenew        AutoRenewalStatus = "will_not_renew"
	AutoRenewalWillChangeProduct   AutoRenewalStatus = "will_change_product"
	AutoRenewalWillPause           AutoRenewalStatus = "will_pause"
	AutoRenewalRequiresPriceChange AutoRenewalStatus = "requires_price_change_confirmation"
)

// SubscriptionStatus describes the lifecycle state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionTrialing       SubscriptionStatus = "trialing"
	SubscriptionActive         SubscriptionStatus = "active"
	SubscriptionExpired        SubscriptionStatus = "expired"
	SubscriptionInGracePeriod  SubscriptionStatus = "in_grace_period"
	SubscriptionInBillingRetry SubscriptionStatus = "in_billing_retry"
	SubscriptionPaused         SubscriptionStatus = "paused"
	SubscriptionUnpaid         SubscriptionStatus = "unpaid"
	SubscriptionIncomplete     SubscriptionStatus = "incomplete"
)

// PurchaseStatus describes the state of a one-time purchase.
type PurchaseStatus string

// Purchase statuses.
const (
	PurchaseOwned    PurchaseStatus = "owned"
	PurchaseRefunded PurchaseStatus = "refunded"
)

// ProductType distinguishes subscription products from one-time products.
type ProductType string

// Product types.
const (
	ProductTypeSubscription ProductType = "subscription"
	ProductTypeOneTime      ProductType = "one_time"
)
