package gocardless

import (
	"time"
)

// Metadata holds up to three custom key-value pairs attached to a resource.
type Metadata map[string]string

// ListMeta is the pagination metadata block of a list response.
type ListMeta struct {
	Cursors Cursors `json:"cursors" yaml:"cursors"`
	Limit   int     `json:"limit"   yaml:"limit"`
}

// Cursors holds the opaque pagination cursors of a list response. A nil
// After means the final page has been reached.
type Cursors struct {
	Before *string `json:"before" yaml:"before"`
	After  *string `json:"after"  yaml:"after"`
}

// Currency is an ISO 4217 currency code supported by the API.
type Currency string

// Supported currencies.
const (
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyDKK Currency = "DKK"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyNZD Currency = "NZD"
	CurrencySEK Currency = "SEK"
	CurrencyUSD Currency = "USD"
)

// Scheme is a direct debit scheme.
type Scheme string

// Direct debit schemes.
const (
	SchemeACH               Scheme = "ach"
	SchemeAutogiro          Scheme = "autogiro"
	SchemeBacs              Scheme = "bacs"
	SchemeBecs              Scheme = "becs"
	SchemeBecsNz            Scheme = "becs_nz"
	SchemeBetalingsservice  Scheme = "betalingsservice"
	SchemePad               Scheme = "pad"
	SchemeSepaCore          Scheme = "sepa_core"
	SchemeSepaCreditorOwned Scheme = "sepa_cor1"
)

// Customer represents an end customer collected from via direct debit.
type Customer struct {
	ID                    string    `json:"id"                               yaml:"id"`
	CreatedAt             time.Time `json:"created_at"                       yaml:"created_at"`
	Email                 string    `json:"email,omitempty"                  yaml:"email,omitempty"`
	GivenName             string    `json:"given_name,omitempty"             yaml:"given_name,omitempty"`
	FamilyName            string    `json:"family_name,omitempty"            yaml:"family_name,omitempty"`
	CompanyName           string    `json:"company_name,omitempty"           yaml:"company_name,omitempty"`
	AddressLine1          string    `json:"address_line1,omitempty"          yaml:"address_line1,omitempty"`
	AddressLine2          string    `json:"address_line2,omitempty"          yaml:"address_line2,omitempty"`
	AddressLine3          string    `json:"address_line3,omitempty"          yaml:"address_line3,omitempty"`
	City                  string    `json:"city,omitempty"                   yaml:"city,omitempty"`
	Region                string    `json:"region,omitempty"                 yaml:"region,omitempty"`
	PostalCode            string    `json:"postal_code,omitempty"            yaml:"postal_code,omitempty"`
	CountryCode           string    `json:"country_code,omitempty"           yaml:"country_code,omitempty"`
	Language              string    `json:"language,omitempty"               yaml:"language,omitempty"`
	PhoneNumber           string    `json:"phone_number,omitempty"           yaml:"phone_number,omitempty"`
	DanishIdentityNumber  string    `json:"danish_identity_number,omitempty" yaml:"danish_identity_number,omitempty"`
	SwedishIdentityNumber string    `json:"swedish_identity_number,omitempty" yaml:"swedish_identity_number,omitempty"`
	Metadata              Metadata  `json:"metadata,omitempty"               yaml:"metadata,omitempty"`
}

// CustomerCreateRequest is the body of a customer create call.
type CustomerCreateRequest struct {
	Email        string   `json:"email,omitempty"`
	GivenName    string   `json:"given_name,omitempty"`
	FamilyName   string   `json:"family_name,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty"`
	AddressLine2 string   `json:"address_line2,omitempty"`
	AddressLine3 string   `json:"address_line3,omitempty"`
	City         string   `json:"city,omitempty"`
	Region       string   `json:"region,omitempty"`
	PostalCode   string   `json:"postal_code,omitempty"`
	CountryCode  string   `json:"country_code,omitempty"`
	Language     string   `json:"language,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"`
}

// CustomerUpdateRequest is the body of a customer update call.
type CustomerUpdateRequest struct {
	Email        string   `json:"email,omitempty"`
	GivenName    string   `json:"given_name,omitempty"`
	FamilyName   string   `json:"family_name,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty"`
	AddressLine2 string   `json:"address_line2,omitempty"`
	AddressLine3 string   `json:"address_line3,omitempty"`
	City         string   `json:"city,omitempty"`
	Region       string   `json:"region,omitempty"`
	PostalCode   string   `json:"postal_code,omitempty"`
	CountryCode  string   `json:"country_code,omitempty"`
	Language     string   `json:"language,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"`
}

// CustomerListResult is one page of customers.
type CustomerListResult struct {
	Customers []Customer `json:"customers" yaml:"customers"`
	Meta      ListMeta   `json:"meta"      yaml:"meta"`
}

// CustomerBankAccountLinks references resources related to a bank account.
type CustomerBankAccountLinks struct {
	Customer string `json:"customer,omitempty" yaml:"customer,omitempty"`
}

// CustomerBankAccount represents a bank account belonging to a customer.
// Account numbers are never returned in full; only the ending is exposed.
type CustomerBankAccount struct {
	ID                  string                   `json:"id"                            yaml:"id"`
	CreatedAt           time.Time                `json:"created_at"                    yaml:"created_at"`
	AccountHolderName   string                   `json:"account_holder_name,omitempty" yaml:"account_holder_name,omitempty"`
	AccountNumberEnding string                   `json:"account_number_ending"         yaml:"account_number_ending"`
	AccountType         string                   `json:"account_type,omitempty"        yaml:"account_type,omitempty"`
	BankName            string                   `json:"bank_name,omitempty"           yaml:"bank_name,omitempty"`
	CountryCode         string                   `json:"country_code,omitempty"        yaml:"country_code,omitempty"`
	Currency            Currency                 `json:"currency,omitempty"            yaml:"currency,omitempty"`
	Enabled             bool                     `json:"enabled"                       yaml:"enabled"`
	Links               CustomerBankAccountLinks `json:"links"                         yaml:"links"`
	Metadata            Metadata                 `json:"metadata,omitempty"            yaml:"metadata,omitempty"`
}

// CustomerBankAccountCreateRequest is the body of a bank account create
// call. Either plain account details or links.customer_bank_account_token
// may be supplied.
type CustomerBankAccountCreateRequest struct {
	AccountHolderName string                          `json:"account_holder_name,omitempty"`
	AccountNumber     string                          `json:"account_number,omitempty"`
	AccountType       string                          `json:"account_type,omitempty"`
	BankCode          string                          `json:"bank_code,omitempty"`
	BranchCode        string                          `json:"branch_code,omitempty"`
	CountryCode       string                          `json:"country_code,omitempty"`
	Currency          Currency                        `json:"currency,omitempty"`
	IBAN              string                          `json:"iban,omitempty"`
	Metadata          Metadata                        `json:"metadata,omitempty"`
	Links             CustomerBankAccountCreateLinks  `json:"links"`
}

// CustomerBankAccountCreateLinks binds a new bank account to its customer.
type CustomerBankAccountCreateLinks struct {
	Customer                 string `json:"customer,omitempty"`
	CustomerBankAccountToken string `json:"customer_bank_account_token,omitempty"`
}

// CustomerBankAccountUpdateRequest is the body of a bank account update.
type CustomerBankAccountUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty"`
}

// CustomerBankAccountListResult is one page of customer bank accounts.
type CustomerBankAccountListResult struct {
	CustomerBankAccounts []CustomerBankAccount `json:"customer_bank_accounts" yaml:"customer_bank_accounts"`
	Meta                 ListMeta              `json:"meta"                   yaml:"meta"`
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusPendingCustomerApproval PaymentStatus = "pending_customer_approval"
	PaymentStatusPendingSubmission       PaymentStatus = "pending_submission"
	PaymentStatusSubmitted               PaymentStatus = "submitted"
	PaymentStatusConfirmed               PaymentStatus = "confirmed"
	PaymentStatusPaidOut                 PaymentStatus = "paid_out"
	PaymentStatusCancelled               PaymentStatus = "cancelled"
	PaymentStatusCustomerApprovalDenied  PaymentStatus = "customer_approval_denied"
	PaymentStatusFailed                  PaymentStatus = "failed"
	PaymentStatusChargedBack             PaymentStatus = "charged_back"
)

// PaymentLinks references resources related to a payment.
type PaymentLinks struct {
	Creditor           string `json:"creditor,omitempty"             yaml:"creditor,omitempty"`
	InstalmentSchedule string `json:"instalment_schedule,omitempty"  yaml:"instalment_schedule,omitempty"`
	Mandate            string `json:"mandate,omitempty"              yaml:"mandate,omitempty"`
	Payout             string `json:"payout,omitempty"               yaml:"payout,omitempty"`
	Subscription       string `json:"subscription,omitempty"         yaml:"subscription,omitempty"`
}

// Payment represents a single direct debit collection attempt.
// Amounts are in the smallest denomination of the currency (e.g. pence).
type Payment struct {
	ID              string        `json:"id"                          yaml:"id"`
	CreatedAt       time.Time     `json:"created_at"                  yaml:"created_at"`
	Amount          int           `json:"amount"                      yaml:"amount"`
	AmountRefunded  int           `json:"amount_refunded"             yaml:"amount_refunded"`
	ChargeDate      string        `json:"charge_date,omitempty"       yaml:"charge_date,omitempty"`
	Currency        Currency      `json:"currency"                    yaml:"currency"`
	Description     string        `json:"description,omitempty"       yaml:"description,omitempty"`
	Reference       string        `json:"reference,omitempty"         yaml:"reference,omitempty"`
	RetryIfPossible bool          `json:"retry_if_possible"           yaml:"retry_if_possible"`
	Status          PaymentStatus `json:"status"                      yaml:"status"`
	Links           PaymentLinks  `json:"links"                       yaml:"links"`
	Metadata        Metadata      `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
}

// PaymentCreateLinks binds a new payment to its mandate.
type PaymentCreateLinks struct {
	Mandate string `json:"mandate"`
}

// PaymentCreateRequest is the body of a payment create call.
type PaymentCreateRequest struct {
	Amount          int                `json:"amount"`
	AppFee          int                `json:"app_fee,omitempty"`
	ChargeDate      string             `json:"charge_date,omitempty"`
	Currency        Currency           `json:"currency"`
	Description     string             `json:"description,omitempty"`
	Reference       string             `json:"reference,omitempty"`
	RetryIfPossible bool               `json:"retry_if_possible,omitempty"`
	Metadata        Metadata           `json:"metadata,omitempty"`
	Links           PaymentCreateLinks `json:"links"`
}

// PaymentUpdateRequest is the body of a payment update call.
type PaymentUpdateRequest struct {
	RetryIfPossible bool     `json:"retry_if_possible,omitempty"`
	Metadata        Metadata `json:"metadata,omitempty"`
}

// PaymentListResult is one page of payments.
type PaymentListResult struct {
	Payments []Payment `json:"payments" yaml:"payments"`
	Meta     ListMeta  `json:"meta"     yaml:"meta"`
}

// MandateStatus is the lifecycle state of a mandate.
type MandateStatus string

// Mandate statuses.
const (
	MandateStatusPendingCustomerApproval MandateStatus = "pending_customer_approval"
	MandateStatusPendingSubmission       MandateStatus = "pending_submission"
	MandateStatusSubmitted               MandateStatus = "submitted"
	MandateStatusActive                  MandateStatus = "active"
	MandateStatusFailed                  MandateStatus = "failed"
	MandateStatusCancelled               MandateStatus = "cancelled"
	MandateStatusExpired                 MandateStatus = "expired"
	MandateStatusConsumed                MandateStatus = "consumed"
	MandateStatusBlocked                 MandateStatus = "blocked"
)

// MandateLinks references resources related to a mandate.
type MandateLinks struct {
	Creditor            string `json:"creditor,omitempty"              yaml:"creditor,omitempty"`
	Customer            string `json:"customer,omitempty"              yaml:"customer,omitempty"`
	CustomerBankAccount string `json:"customer_bank_account,omitempty" yaml:"customer_bank_account,omitempty"`
	NewMandate          string `json:"new_mandate,omitempty"           yaml:"new_mandate,omitempty"`
}

// Mandate represents a direct debit mandate against a customer's bank
// account.
type Mandate struct {
	ID                      string        `json:"id"                                  yaml:"id"`
	CreatedAt               time.Time     `json:"created_at"                          yaml:"created_at"`
	Reference               string        `json:"reference,omitempty"                 yaml:"reference,omitempty"`
	Scheme                  Scheme        `json:"scheme,omitempty"                    yaml:"scheme,omitempty"`
	Status                  MandateStatus `json:"status"                              yaml:"status"`
	NextPossibleChargeDate  string        `json:"next_possible_charge_date,omitempty" yaml:"next_possible_charge_date,omitempty"`
	PaymentsRequireApproval bool          `json:"payments_require_approval"           yaml:"payments_require_approval"`
	Links                   MandateLinks  `json:"links"                               yaml:"links"`
	Metadata                Metadata      `json:"metadata,omitempty"                  yaml:"metadata,omitempty"`
}

// MandateCreateLinks binds a new mandate to a customer bank account and
// optionally a creditor.
type MandateCreateLinks struct {
	Creditor            string `json:"creditor,omitempty"`
	CustomerBankAccount string `json:"customer_bank_account"`
}

// MandateCreateRequest is the body of a mandate create call.
type MandateCreateRequest struct {
	Reference string             `json:"reference,omitempty"`
	Scheme    Scheme             `json:"scheme,omitempty"`
	Metadata  Metadata           `json:"metadata,omitempty"`
	Links     MandateCreateLinks `json:"links"`
}

// MandateUpdateRequest is the body of a mandate update call.
type MandateUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty"`
}

// MandateListResult is one page of mandates.
type MandateListResult struct {
	Mandates []Mandate `json:"mandates" yaml:"mandates"`
	Meta     ListMeta  `json:"meta"     yaml:"meta"`
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionStatusPendingCustomerApproval SubscriptionStatus = "pending_customer_approval"
	SubscriptionStatusCustomerApprovalDenied  SubscriptionStatus = "customer_approval_denied"
	SubscriptionStatusActive                  SubscriptionStatus = "active"
	SubscriptionStatusFinished                SubscriptionStatus = "finished"
	SubscriptionStatusCancelled               SubscriptionStatus = "cancelled"
	SubscriptionStatusPaused                  SubscriptionStatus = "paused"
)

// IntervalUnit is the billing interval unit of a subscription.
type IntervalUnit string

// Interval units.
const (
	IntervalUnitWeekly  IntervalUnit = "weekly"
	IntervalUnitMonthly IntervalUnit = "monthly"
	IntervalUnitYearly  IntervalUnit = "yearly"
)

// SubscriptionLinks references resources related to a subscription.
type SubscriptionLinks struct {
	Mandate string `json:"mandate,omitempty" yaml:"mandate,omitempty"`
}

// UpcomingPayment is a payment the API expects to create for a
// subscription.
type UpcomingPayment struct {
	ChargeDate string `json:"charge_date" yaml:"charge_date"`
	Amount     int    `json:"amount"      yaml:"amount"`
}

// Subscription represents a recurring payment schedule against a mandate.
type Subscription struct {
	ID               string             `json:"id"                          yaml:"id"`
	CreatedAt        time.Time          `json:"created_at"                  yaml:"created_at"`
	Amount           int                `json:"amount"                      yaml:"amount"`
	Currency         Currency           `json:"currency"                    yaml:"currency"`
	Status           SubscriptionStatus `json:"status"                      yaml:"status"`
	Name             string             `json:"name,omitempty"              yaml:"name,omitempty"`
	StartDate        string             `json:"start_date,omitempty"        yaml:"start_date,omitempty"`
	EndDate          string             `json:"end_date,omitempty"          yaml:"end_date,omitempty"`
	Interval         int                `json:"interval"                    yaml:"interval"`
	IntervalUnit     IntervalUnit       `json:"interval_unit"               yaml:"interval_unit"`
	DayOfMonth       int                `json:"day_of_month,omitempty"      yaml:"day_of_month,omitempty"`
	Month            string             `json:"month,omitempty"             yaml:"month,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty" yaml:"payment_reference,omitempty"`
	RetryIfPossible  bool               `json:"retry_if_possible"           yaml:"retry_if_possible"`
	UpcomingPayments []UpcomingPayment  `json:"upcoming_payments,omitempty" yaml:"upcoming_payments,omitempty"`
	Links            SubscriptionLinks  `json:"links"                       yaml:"links"`
	Metadata         Metadata           `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
}

// SubscriptionCreateLinks binds a new subscription to its mandate.
type SubscriptionCreateLinks struct {
	Mandate string `json:"mandate"`
}

// SubscriptionCreateRequest is the body of a subscription create call.
type SubscriptionCreateRequest struct {
	Amount           int                     `json:"amount"`
	AppFee           int                     `json:"app_fee,omitempty"`
	Count            int                     `json:"count,omitempty"`
	Currency         Currency                `json:"currency"`
	DayOfMonth       int                     `json:"day_of_month,omitempty"`
	EndDate          string                  `json:"end_date,omitempty"`
	Interval         int                     `json:"interval,omitempty"`
	IntervalUnit     IntervalUnit            `json:"interval_unit"`
	Month            string                  `json:"month,omitempty"`
	Name             string                  `json:"name,omitempty"`
	PaymentReference string                  `json:"payment_reference,omitempty"`
	RetryIfPossible  bool                    `json:"retry_if_possible,omitempty"`
	StartDate        string                  `json:"start_date,omitempty"`
	Metadata         Metadata                `json:"metadata,omitempty"`
	Links            SubscriptionCreateLinks `json:"links"`
}

// SubscriptionUpdateRequest is the body of a subscription update call.
type SubscriptionUpdateRequest struct {
	Amount           int      `json:"amount,omitempty"`
	AppFee           int      `json:"app_fee,omitempty"`
	Name             string   `json:"name,omitempty"`
	PaymentReference string   `json:"payment_reference,omitempty"`
	RetryIfPossible  bool     `json:"retry_if_possible,omitempty"`
	Metadata         Metadata `json:"metadata,omitempty"`
}

// SubscriptionPauseRequest is the body of a subscription pause action.
type SubscriptionPauseRequest struct {
	PauseCycles int      `json:"pause_cycles,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// SubscriptionListResult is one page of subscriptions.
type SubscriptionListResult struct {
	Subscriptions []Subscription `json:"subscriptions" yaml:"subscriptions"`
	Meta          ListMeta       `json:"meta"          yaml:"meta"`
}

// RefundLinks references resources related to a refund.
type RefundLinks struct {
	Mandate string `json:"mandate,omitempty" yaml:"mandate,omitempty"`
	Payment string `json:"payment,omitempty" yaml:"payment,omitempty"`
}

// Refund represents a (partial) refund of a payment.
type Refund struct {
	ID        string      `json:"id"                  yaml:"id"`
	CreatedAt time.Time   `json:"created_at"          yaml:"created_at"`
	Amount    int         `json:"amount"              yaml:"amount"`
	Currency  Currency    `json:"currency"            yaml:"currency"`
	Reference string      `json:"reference,omitempty" yaml:"reference,omitempty"`
	Status    string      `json:"status,omitempty"    yaml:"status,omitempty"`
	Links     RefundLinks `json:"links"               yaml:"links"`
	Metadata  Metadata    `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// RefundCreateLinks binds a new refund to its payment or mandate.
type RefundCreateLinks struct {
	Mandate string `json:"mandate,omitempty"`
	Payment string `json:"payment,omitempty"`
}

// RefundCreateRequest is the body of a refund create call.
// TotalAmountConfirmation guards against double refunds: it must equal the
// total amount refunded for the payment including this refund.
type RefundCreateRequest struct {
	Amount                  int               `json:"amount"`
	Reference               string            `json:"reference,omitempty"`
	TotalAmountConfirmation int               `json:"total_amount_confirmation,omitempty"`
	Metadata                Metadata          `json:"metadata,omitempty"`
	Links                   RefundCreateLinks `json:"links"`
}

// RefundUpdateRequest is the body of a refund update call.
type RefundUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty"`
}

// RefundListResult is one page of refunds.
type RefundListResult struct {
	Refunds []Refund `json:"refunds" yaml:"refunds"`
	Meta    ListMeta `json:"meta"    yaml:"meta"`
}

// PayoutStatus is the lifecycle state of a payout.
type PayoutStatus string

// Payout statuses.
const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
	PayoutStatusBounced PayoutStatus = "bounced"
)

// PayoutLinks references resources related to a payout.
type PayoutLinks struct {
	Creditor            string `json:"creditor,omitempty"              yaml:"creditor,omitempty"`
	CreditorBankAccount string `json:"creditor_bank_account,omitempty" yaml:"creditor_bank_account,omitempty"`
}

// Payout represents a transfer of collected funds to a creditor's bank
// account.
type Payout struct {
	ID           string       `json:"id"                      yaml:"id"`
	CreatedAt    time.Time    `json:"created_at"              yaml:"created_at"`
	Amount       int          `json:"amount"                  yaml:"amount"`
	ArrivalDate  string       `json:"arrival_date,omitempty"  yaml:"arrival_date,omitempty"`
	Currency     Currency     `json:"currency"                yaml:"currency"`
	DeductedFees int          `json:"deducted_fees"           yaml:"deducted_fees"`
	PayoutType   string       `json:"payout_type,omitempty"   yaml:"payout_type,omitempty"`
	Reference    string       `json:"reference,omitempty"     yaml:"reference,omitempty"`
	Status       PayoutStatus `json:"status"                  yaml:"status"`
	TaxCurrency  string       `json:"tax_currency,omitempty"  yaml:"tax_currency,omitempty"`
	Links        PayoutLinks  `json:"links"                   yaml:"links"`
	Metadata     Metadata     `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// PayoutListResult is one page of payouts.
type PayoutListResult struct {
	Payouts []Payout `json:"payouts" yaml:"payouts"`
	Meta    ListMeta `json:"meta"    yaml:"meta"`
}

// EventDetails explains what triggered an event.
type EventDetails struct {
	Origin      string `json:"origin,omitempty"       yaml:"origin,omitempty"`
	Cause       string `json:"cause,omitempty"        yaml:"cause,omitempty"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"`
	Scheme      string `json:"scheme,omitempty"       yaml:"scheme,omitempty"`
	ReasonCode  string `json:"reason_code,omitempty"  yaml:"reason_code,omitempty"`
}

// EventLinks references the resources an event concerns.
type EventLinks struct {
	Creditor                 string `json:"creditor,omitempty"                   yaml:"creditor,omitempty"`
	Customer                 string `json:"customer,omitempty"                   yaml:"customer,omitempty"`
	Mandate                  string `json:"mandate,omitempty"                    yaml:"mandate,omitempty"`
	NewCustomerBankAccount   string `json:"new_customer_bank_account,omitempty"  yaml:"new_customer_bank_account,omitempty"`
	NewMandate               string `json:"new_mandate,omitempty"                yaml:"new_mandate,omitempty"`
	ParentEvent              string `json:"parent_event,omitempty"               yaml:"parent_event,omitempty"`
	Payment                  string `json:"payment,omitempty"                    yaml:"payment,omitempty"`
	Payout                   string `json:"payout,omitempty"                     yaml:"payout,omitempty"`
	PreviousCustomerBankAccount string `json:"previous_customer_bank_account,omitempty" yaml:"previous_customer_bank_account,omitempty"`
	Refund                   string `json:"refund,omitempty"                     yaml:"refund,omitempty"`
	Subscription             string `json:"subscription,omitempty"               yaml:"subscription,omitempty"`
}

// Event records an action that has happened to another resource, e.g. a
// payment being confirmed or a mandate being cancelled.
type Event struct {
	ID           string       `json:"id"                 yaml:"id"`
	CreatedAt    time.Time    `json:"created_at"         yaml:"created_at"`
	ResourceType string       `json:"resource_type"      yaml:"resource_type"`
	Action       string       `json:"action"             yaml:"action"`
	Details      EventDetails `json:"details"            yaml:"details"`
	Links        EventLinks   `json:"links"              yaml:"links"`
	Metadata     Metadata     `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// EventListResult is one page of events.
type EventListResult struct {
	Events []Event  `json:"events" yaml:"events"`
	Meta   ListMeta `json:"meta"   yaml:"meta"`
}

// SchemeIdentifier is a creditor's identity within a direct debit scheme.
type SchemeIdentifier struct {
	Name                string `json:"name"                  yaml:"name"`
	Scheme              Scheme `json:"scheme"                yaml:"scheme"`
	Reference           string `json:"reference"             yaml:"reference"`
	CanSpecifyMandateReference bool `json:"can_specify_mandate_reference" yaml:"can_specify_mandate_reference"`
	Currency            Currency `json:"currency"            yaml:"currency"`
	MinimumAdvanceNotice int     `json:"minimum_advance_notice" yaml:"minimum_advance_notice"`
}

// CreditorLinks references a creditor's default payout accounts.
type CreditorLinks struct {
	DefaultDkkPayoutAccount string `json:"default_dkk_payout_account,omitempty" yaml:"default_dkk_payout_account,omitempty"`
	DefaultEurPayoutAccount string `json:"default_eur_payout_account,omitempty" yaml:"default_eur_payout_account,omitempty"`
	DefaultGbpPayoutAccount string `json:"default_gbp_payout_account,omitempty" yaml:"default_gbp_payout_account,omitempty"`
	DefaultSekPayoutAccount string `json:"default_sek_payout_account,omitempty" yaml:"default_sek_payout_account,omitempty"`
	DefaultUsdPayoutAccount string `json:"default_usd_payout_account,omitempty" yaml:"default_usd_payout_account,omitempty"`
}

// Creditor represents the organisation collecting payments.
type Creditor struct {
	ID                 string             `json:"id"                            yaml:"id"`
	CreatedAt          time.Time          `json:"created_at"                    yaml:"created_at"`
	Name               string             `json:"name"                          yaml:"name"`
	AddressLine1       string             `json:"address_line1,omitempty"       yaml:"address_line1,omitempty"`
	AddressLine2       string             `json:"address_line2,omitempty"       yaml:"address_line2,omitempty"`
	AddressLine3       string             `json:"address_line3,omitempty"       yaml:"address_line3,omitempty"`
	City               string             `json:"city,omitempty"                yaml:"city,omitempty"`
	Region             string             `json:"region,omitempty"              yaml:"region,omitempty"`
	PostalCode         string             `json:"postal_code,omitempty"         yaml:"postal_code,omitempty"`
	CountryCode        string             `json:"country_code,omitempty"        yaml:"country_code,omitempty"`
	LogoURL            string             `json:"logo_url,omitempty"            yaml:"logo_url,omitempty"`
	VerificationStatus string             `json:"verification_status,omitempty" yaml:"verification_status,omitempty"`
	CanCreateRefunds   bool               `json:"can_create_refunds"            yaml:"can_create_refunds"`
	SchemeIdentifiers  []SchemeIdentifier `json:"scheme_identifiers,omitempty"  yaml:"scheme_identifiers,omitempty"`
	Links              CreditorLinks      `json:"links"                         yaml:"links"`
}

// CreditorCreateRequest is the body of a creditor create call.
type CreditorCreateRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// CreditorUpdateRequest is the body of a creditor update call.
type CreditorUpdateRequest struct {
	Name         string `json:"name,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// CreditorListResult is one page of creditors.
type CreditorListResult struct {
	Creditors []Creditor `json:"creditors" yaml:"creditors"`
	Meta      ListMeta   `json:"meta"      yaml:"meta"`
}

// RedirectFlowLinks references resources created by a completed redirect
// flow.
type RedirectFlowLinks struct {
	Creditor            string `json:"creditor,omitempty"              yaml:"creditor,omitempty"`
	Customer            string `json:"customer,omitempty"              yaml:"customer,omitempty"`
	CustomerBankAccount string `json:"customer_bank_account,omitempty" yaml:"customer_bank_account,omitempty"`
	Mandate             string `json:"mandate,omitempty"               yaml:"mandate,omitempty"`
}

// RedirectFlow represents the hosted payment pages flow used to set up a
// mandate with a customer.
type RedirectFlow struct {
	ID                 string            `json:"id"                             yaml:"id"`
	CreatedAt          time.Time         `json:"created_at"                     yaml:"created_at"`
	Description        string            `json:"description,omitempty"          yaml:"description,omitempty"`
	Scheme             Scheme            `json:"scheme,omitempty"               yaml:"scheme,omitempty"`
	SessionToken       string            `json:"session_token,omitempty"        yaml:"session_token,omitempty"`
	SuccessRedirectURL string            `json:"success_redirect_url,omitempty" yaml:"success_redirect_url,omitempty"`
	RedirectURL        string            `json:"redirect_url,omitempty"         yaml:"redirect_url,omitempty"`
	ConfirmationURL    string            `json:"confirmation_url,omitempty"     yaml:"confirmation_url,omitempty"`
	Links              RedirectFlowLinks `json:"links"                          yaml:"links"`
}

// RedirectFlowCreateLinks optionally pins a redirect flow to a creditor.
type RedirectFlowCreateLinks struct {
	Creditor string `json:"creditor,omitempty"`
}

// RedirectFlowCreateRequest is the body of a redirect flow create call.
type RedirectFlowCreateRequest struct {
	Description        string                   `json:"description,omitempty"`
	Scheme             Scheme                   `json:"scheme,omitempty"`
	SessionToken       string                   `json:"session_token"`
	SuccessRedirectURL string                   `json:"success_redirect_url"`
	PrefilledCustomer  *CustomerCreateRequest   `json:"prefilled_customer,omitempty"`
	Links              *RedirectFlowCreateLinks `json:"links,omitempty"`
}
