// Package gcclient provides the primary entry point for constructing a
// GoCardless API client that implements the gocardless.Client interface.
//
// It layers configuration, HTTP transport, and bearer-token authentication
// on top of the resource interfaces and types defined in the gocardless
// package. Most applications should import gcclient to build a client, then
// use the returned gocardless.Client to access resource-specific services,
// for example Customers(), Payments(), Mandates(), etc.
//
// Quick start
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
//
//	  // Minimal: an access token against the live environment.
//	  cli, err := gcclient.NewWithToken("live_token_xxx")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or configure explicitly:
//	  cli, err = gcclient.New(&gocardless.Config{
//	    AccessToken: "sandbox_token_xxx",
//	    Environment: gocardless.EnvironmentSandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource services via the gocardless.Client interface
//	  payments, err := cli.Payments().List(ctx, gocardless.NewListParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = payments
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewSandboxWithToken that wrap New with the appropriate configuration.
package gcclient
