// Package gocardless provides types, interfaces, and helpers for working
// with the GoCardless API (version 2015-07-06).
//
// # Overview
//
// The gocardless package defines the domain types (e.g., Customer, Payment,
// Mandate, Subscription) and the interfaces for resource-oriented services
// (e.g., CustomersService, PaymentsService). A concrete implementation of
// these services is provided by the gcclient package, which wires
// configuration, transport, and authentication. Most consumers should
// import gcclient to construct a client and then interact with the service
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/gocardless/gocardless-go/pkg/gcclient"
//	  "github.com/gocardless/gocardless-go/pkg/gocardless"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gcclient.New(&gocardless.Config{
//	    AccessToken: "your-access-token",
//	    Environment: gocardless.EnvironmentSandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of customers
//	  customers, err := cli.Customers().List(ctx, gocardless.NewListParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Pagination
//
// Every list endpoint is cursor-paginated: each page carries an opaque
// "after" cursor and the final page omits it. The package provides a lazy
// iterator over all items, which fetches pages on demand:
//
//	it := cli.Customers().All(ctx, gocardless.NewListParams())
//	for it.HasNext() {
//	  customer, err := it.Next()
//	  if err != nil { break }
//	  _ = customer
//	}
//
// and a lazy asynchronous page stream, which never fetches more than one
// page ahead of the consumer:
//
//	for page := range cli.Customers().Pages(ctx, nil) {
//	  if page.Err != nil { /* handle error */ break }
//	  _ = page.Items
//	}
//
// # Errors
//
// API errors are represented by APIError with its field-level
// ValidationError entries. Helpers such as IsNotFound, IsInvalidState, and
// IsValidationFailed make it easy to branch on common error cases.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, auth headers, idempotency keys, metrics, rate
// limiting) and a pluggable Cache abstraction with memory and NATS KV
// backends. The gcclient package composes these pieces for a sensible
// default client; applications with advanced needs can also use these
// primitives directly.
package gocardless
