package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const customerBankAccountsKey = "customer_bank_accounts"

// CustomerBankAccountsService implements
// gocardless.CustomerBankAccountsService.
type CustomerBankAccountsService struct {
	httpClient *http.Client
}

// NewCustomerBankAccountsService creates a new customer bank accounts
// service.
func NewCustomerBankAccountsService(httpClient *http.Client) *CustomerBankAccountsService {
	return &CustomerBankAccountsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.CustomerBankAccountsService.Create.
func (s *CustomerBankAccountsService) Create(ctx context.Context, req *gocardless.CustomerBankAccountCreateRequest) (*gocardless.CustomerBankAccount, error) {
	resp, err := s.httpClient.Post(ctx, "/customer_bank_accounts", requestEnvelope(customerBankAccountsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating customer bank account: %w", err)
	}

	return decodeResource[gocardless.CustomerBankAccount](resp.Body, customerBankAccountsKey)
}

// Get implements gocardless.CustomerBankAccountsService.Get.
func (s *CustomerBankAccountsService) Get(ctx context.Context, id string) (*gocardless.CustomerBankAccount, error) {
	err := validateID(id, "customer bank account")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/customer_bank_accounts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer bank account: %w", err)
	}

	return decodeResource[gocardless.CustomerBankAccount](resp.Body, customerBankAccountsKey)
}

// Update implements gocardless.CustomerBankAccountsService.Update.
func (s *CustomerBankAccountsService) Update(ctx context.Context, id string, req *gocardless.CustomerBankAccountUpdateRequest) (*gocardless.CustomerBankAccount, error) {
	err := validateID(id, "customer bank account")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/customer_bank_accounts/"+id, requestEnvelope(customerBankAccountsKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating customer bank account: %w", err)
	}

	return decodeResource[gocardless.CustomerBankAccount](resp.Body, customerBankAccountsKey)
}

// Disable implements gocardless.CustomerBankAccountsService.Disable.
// Disabling a bank account immediately cancels all its associated mandates
// and subscriptions.
func (s *CustomerBankAccountsService) Disable(ctx context.Context, id string) (*gocardless.CustomerBankAccount, error) {
	err := validateID(id, "customer bank account")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/customer_bank_accounts/"+id+"/actions/disable", nil)
	if err != nil {
		return nil, fmt.Errorf("disabling customer bank account: %w", err)
	}

	return decodeResource[gocardless.CustomerBankAccount](resp.Body, customerBankAccountsKey)
}

// List implements gocardless.CustomerBankAccountsService.List.
func (s *CustomerBankAccountsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.CustomerBankAccountListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/customer_bank_accounts", query)
	if err != nil {
		return nil, fmt.Errorf("listing customer bank accounts: %w", err)
	}

	var result gocardless.CustomerBankAccountListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing customer bank accounts list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.CustomerBankAccountsService.All.
func (s *CustomerBankAccountsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.CustomerBankAccount] {
	fetch := pageFetcher[gocardless.CustomerBankAccount](s.httpClient, "/customer_bank_accounts", customerBankAccountsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.CustomerBankAccountsService.Pages.
func (s *CustomerBankAccountsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.CustomerBankAccount] {
	fetch := pageFetcher[gocardless.CustomerBankAccount](s.httpClient, "/customer_bank_accounts", customerBankAccountsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
