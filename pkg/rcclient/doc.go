// Package rcclient provides the primary entry point for constructing a
// RevenueCat API v2 client that implements the revenuecat.Client interface.
//
// It layers configuration, HTTP transport, authentication, and response
// caching on top of the resource interfaces and types defined in the
// revenuecat package. Most applications should import rcclient to build a
// client, then use the returned revenuecat.Client to access resource-specific
// clients, for example Customers(), Products(), Subscriptions(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/frknlkn/revenuecat-go/pkg/rcclient"
//	  "github.com/frknlkn/revenuecat-go/pkg/revenuecat"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a secret API key.
//	  cli, err := rcclient.NewWithAPIKey("sk_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = rcclient.New(&revenuecat.Config{
//	    APIKey:   "sk_...",
//	    RetryMax: 5,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the revenuecat.Client interface
//	  customers, err := cli.Customers().List(ctx, "proj_id", revenuecat.NewListQuery().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Endpoint normalization
//
// When Config.APIEndpoint is empty, the public endpoint
// https://api.revenuecat.com/v2 is used. A trailing slash is stripped and
// https:// is assumed when no scheme is given.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithEndpoint that wrap New with the appropriate configuration.
package rcclient
