// Package client holds the concrete implementations of the resource
// services exposed through gocardless.Client.
package client

import (
	"strings"

	"github.com/gocardless/gocardless-go/internal/auth"
	"github.com/gocardless/gocardless-go/internal/constants"
	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// Client implements the gocardless.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       gocardless.Logger

	// Resource services
	customers            gocardless.CustomersService
	customerBankAccounts gocardless.CustomerBankAccountsService
	payments             gocardless.PaymentsService
	mandates             gocardless.MandatesService
	subscriptions        gocardless.SubscriptionsService
	refunds              gocardless.RefundsService
	payouts              gocardless.PayoutsService
	events               gocardless.EventsService
	creditors            gocardless.CreditorsService
	redirectFlows        gocardless.RedirectFlowsService
}

// New creates a client against the given endpoint. The endpoint must
// already be resolved; environment mapping happens in gcclient.
func New(config *gocardless.Config) (*Client, error) {
	if config == nil {
		return nil, gocardless.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, gocardless.ErrEndpointRequired
	}

	var tokenManager auth.TokenManager
	if config.AccessToken != "" {
		tokenManager = auth.NewStaticTokenManager(config.AccessToken)
	}

	httpOpts, err := httpClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(strings.TrimSuffix(config.Endpoint, "/"), tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeServices()

	return client, nil
}

// httpClientOptions builds HTTP client options from config.
func httpClientOptions(config *gocardless.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := gocardless.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		ttl := constants.DefaultCacheTTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// initializeServices initializes all resource-specific services.
func (c *Client) initializeServices() {
	c.customers = NewCustomersService(c.httpClient)
	c.customerBankAccounts = NewCustomerBankAccountsService(c.httpClient)
	c.payments = NewPaymentsService(c.httpClient)
	c.mandates = NewMandatesService(c.httpClient)
	c.subscriptions = NewSubscriptionsService(c.httpClient)
	c.refunds = NewRefundsService(c.httpClient)
	c.payouts = NewPayoutsService(c.httpClient)
	c.events = NewEventsService(c.httpClient)
	c.creditors = NewCreditorsService(c.httpClient)
	c.redirectFlows = NewRedirectFlowsService(c.httpClient)
}

// Customers implements gocardless.Client.Customers.
func (c *Client) Customers() gocardless.CustomersService {
	return c.customers
}

// CustomerBankAccounts implements gocardless.Client.CustomerBankAccounts.
func (c *Client) CustomerBankAccounts() gocardless.CustomerBankAccountsService {
	return c.customerBankAccounts
}

// Payments implements gocardless.Client.Payments.
func (c *Client) Payments() gocardless.PaymentsService {
	return c.payments
}

// Mandates implements gocardless.Client.Mandates.
func (c *Client) Mandates() gocardless.MandatesService {
	return c.mandates
}

// Subscriptions implements gocardless.Client.Subscriptions.
func (c *Client) Subscriptions() gocardless.SubscriptionsService {
	return c.subscriptions
}

// Refunds implements gocardless.Client.Refunds.
func (c *Client) Refunds() gocardless.RefundsService {
	return c.refunds
}

// Payouts implements gocardless.Client.Payouts.
func (c *Client) Payouts() gocardless.PayoutsService {
	return c.payouts
}

// Events implements gocardless.Client.Events.
func (c *Client) Events() gocardless.EventsService {
	return c.events
}

// Creditors implements gocardless.Client.Creditors.
func (c *Client) Creditors() gocardless.CreditorsService {
	return c.creditors
}

// RedirectFlows implements gocardless.Client.RedirectFlows.
func (c *Client) RedirectFlows() gocardless.RedirectFlowsService {
	return c.redirectFlows
}
