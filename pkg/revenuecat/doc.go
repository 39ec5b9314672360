// Package revenuecat provides types, interfaces, and helpers for working with
// the RevenueCat REST API v2.
//
// # Overview
//
// The revenuecat package defines the domain types (e.g., Project, App,
// Customer, Product, Entitlement, Offering, Package, Subscription) and the
// interfaces for resource-oriented clients (e.g., CustomersClient,
// ProductsClient). A concrete implementation of these clients is provided by
// the rcclient package, which wires configuration, transport, and
// authentication. Most consumers should import rcclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := rcclient.New(&revenuecat.Config{APIKey: "sk_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of customers
//	  customers, err := cli.Customers().List(ctx, "proj_abc", revenuecat.NewListQuery().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Queries and pagination
//
// Use ListQuery to express common list options (limit, starting_after, expand,
// filters). List endpoints return a Page whose next_page link carries the
// cursor for the following page; an absent next_page means the list is
// exhausted. The package provides helpers that hide cursor management:
//
//	it := revenuecat.NewPageIterator(func(ctx context.Context, cursor string) (*revenuecat.Page[revenuecat.Customer], error) {
//	  return cli.Customers().List(ctx, "proj_abc", revenuecat.NewListQuery().WithStartingAfter(cursor))
//	}, nil)
//	for {
//	  customer, err := it.Next(ctx)
//	  if err != nil { break }
//	  _ = customer
//	}
//
// or fetch all results at once with FetchAll, or stream page-by-page over a
// channel with StreamPages.
//
// # Errors
//
// API errors are represented by APIError, which carries the server's
// machine-readable type, message, and retry hints. Helpers such as IsNotFound,
// IsRateLimited, and IsAuthenticationError make it easy to branch on common
// cases. Malformed list responses surface as ErrMalformedPage, distinct from
// transport errors.
//
// # Caching
//
// The package includes a pluggable Cache abstraction with in-memory and NATS
// JetStream KV backends. The rcclient package composes these pieces for a
// sensible default client; the default policy never caches cursor-bearing
// list requests, so page traversals always observe live data.
package revenuecat
