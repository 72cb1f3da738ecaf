package gocardless

import (
	"context"
	"time"
)

// Environment selects which GoCardless API the client talks to.
type Environment string

// Supported environments.
const (
	EnvironmentLive    Environment = "live"
	EnvironmentSandbox Environment = "sandbox"
)

// API endpoints per environment.
const (
	LiveEndpoint    = "https://api.gocardless.com"
	SandboxEndpoint = "https://api-sandbox.gocardless.com"
)

// APIVersion is the GoCardless-Version header value sent on every request.
const APIVersion = "2015-07-06"

// CustomersService manages customer resources.
type CustomersService interface {
	Create(ctx context.Context, req *CustomerCreateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, req *CustomerUpdateRequest) (*Customer, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, params *ListParams) (*CustomerListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Customer]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Customer]
}

// CustomerBankAccountsService manages customer bank account resources.
type CustomerBankAccountsService interface {
	Create(ctx context.Context, req *CustomerBankAccountCreateRequest) (*CustomerBankAccount, error)
	Get(ctx context.Context, id string) (*CustomerBankAccount, error)
	Update(ctx context.Context, id string, req *CustomerBankAccountUpdateRequest) (*CustomerBankAccount, error)
	Disable(ctx context.Context, id string) (*CustomerBankAccount, error)
	List(ctx context.Context, params *ListParams) (*CustomerBankAccountListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[CustomerBankAccount]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[CustomerBankAccount]
}

// PaymentsService manages payment resources.
type PaymentsService interface {
	Create(ctx context.Context, req *PaymentCreateRequest) (*Payment, error)
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, id string, req *PaymentUpdateRequest) (*Payment, error)
	Cancel(ctx context.Context, id string, metadata Metadata) (*Payment, error)
	Retry(ctx context.Context, id string, metadata Metadata) (*Payment, error)
	List(ctx context.Context, params *ListParams) (*PaymentListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Payment]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Payment]
}

// MandatesService manages mandate resources.
type MandatesService interface {
	Create(ctx context.Context, req *MandateCreateRequest) (*Mandate, error)
	Get(ctx context.Context, id string) (*Mandate, error)
	Update(ctx context.Context, id string, req *MandateUpdateRequest) (*Mandate, error)
	Cancel(ctx context.Context, id string, metadata Metadata) (*Mandate, error)
	Reinstate(ctx context.Context, id string, metadata Metadata) (*Mandate, error)
	List(ctx context.Context, params *ListParams) (*MandateListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Mandate]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Mandate]
}

// SubscriptionsService manages subscription resources.
type SubscriptionsService interface {
	Create(ctx context.Context, req *SubscriptionCreateRequest) (*Subscription, error)
	Get(ctx context.Context, id string) (*Subscription, error)
	Update(ctx context.Context, id string, req *SubscriptionUpdateRequest) (*Subscription, error)
	Cancel(ctx context.Context, id string, metadata Metadata) (*Subscription, error)
	Pause(ctx context.Context, id string, req *SubscriptionPauseRequest) (*Subscription, error)
	Resume(ctx context.Context, id string, metadata Metadata) (*Subscription, error)
	List(ctx context.Context, params *ListParams) (*SubscriptionListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Subscription]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Subscription]
}

// RefundsService manages refund resources.
type RefundsService interface {
	Create(ctx context.Context, req *RefundCreateRequest) (*Refund, error)
	Get(ctx context.Context, id string) (*Refund, error)
	Update(ctx context.Context, id string, req *RefundUpdateRequest) (*Refund, error)
	List(ctx context.Context, params *ListParams) (*RefundListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Refund]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Refund]
}

// PayoutsService provides read access to payout resources.
type PayoutsService interface {
	Get(ctx context.Context, id string) (*Payout, error)
	List(ctx context.Context, params *ListParams) (*PayoutListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Payout]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Payout]
}

// EventsService provides read access to the event feed.
type EventsService interface {
	Get(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params *ListParams) (*EventListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Event]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Event]
}

// CreditorsService manages creditor resources.
type CreditorsService interface {
	Create(ctx context.Context, req *CreditorCreateRequest) (*Creditor, error)
	Get(ctx context.Context, id string) (*Creditor, error)
	Update(ctx context.Context, id string, req *CreditorUpdateRequest) (*Creditor, error)
	List(ctx context.Context, params *ListParams) (*CreditorListResult, error)
	All(ctx context.Context, params *ListParams) *Iterator[Creditor]
	Pages(ctx context.Context, params *ListParams) <-chan PageResult[Creditor]
}

// RedirectFlowsService manages hosted payment page flows. Redirect flows
// are short-lived and never listed.
type RedirectFlowsService interface {
	Create(ctx context.Context, req *RedirectFlowCreateRequest) (*RedirectFlow, error)
	Get(ctx context.Context, id string) (*RedirectFlow, error)
	Complete(ctx context.Context, id, sessionToken string) (*RedirectFlow, error)
}

// Client provides access to all resource services.
type Client interface {
	Customers() CustomersService
	CustomerBankAccounts() CustomerBankAccountsService
	Payments() PaymentsService
	Mandates() MandatesService
	Subscriptions() SubscriptionsService
	Refunds() RefundsService
	Payouts() PayoutsService
	Events() EventsService
	Creditors() CreditorsService
	RedirectFlows() RedirectFlowsService
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gocardless.Client.
//
// AccessToken is the only credential the API accepts; tokens are created in
// the GoCardless dashboard and scoped read-only or read-write. Environment
// selects the live or sandbox API; Endpoint, when set, overrides the
// environment mapping entirely (useful against a test server).
type Config struct {
	// AccessToken: required. Sent as a Bearer token on every request.
	AccessToken string

	// Environment: "live" or "sandbox". Defaults to live when both
	// Environment and Endpoint are empty.
	Environment Environment
	// Endpoint: overrides the environment → URL mapping. Trailing slashes
	// are trimmed.
	Endpoint string

	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a sensible default is used.
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
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache: optional response cache configuration for GET requests.
	Cache *CacheConfig
}
