package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestCustomerBankAccountsCreate(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[gocardless.CustomerBankAccountCreateRequest, gocardless.CustomerBankAccount]{
		{
			Name: "create from account details",
			Request: &gocardless.CustomerBankAccountCreateRequest{
				AccountHolderName: "Frank Osborne",
				AccountNumber:     "55779911",
				BranchCode:        "200000",
				CountryCode:       "GB",
				Links:             gocardless.CustomerBankAccountCreateLinks{Customer: "CU123"},
			},
			ExpectedPath: "/customer_bank_accounts",
			ResourceKey:  "customer_bank_accounts",
			StatusCode:   http.StatusCreated,
			Response: &gocardless.CustomerBankAccount{
				ID:                  "BA123",
				AccountNumberEnding: "11",
				Enabled:             true,
				Links:               gocardless.CustomerBankAccountLinks{Customer: "CU123"},
			},
		},
		{
			Name: "create from token",
			Request: &gocardless.CustomerBankAccountCreateRequest{
				Links: gocardless.CustomerBankAccountCreateLinks{
					CustomerBankAccountToken: "BAT123",
				},
			},
			ExpectedPath: "/customer_bank_accounts",
			ResourceKey:  "customer_bank_accounts",
			StatusCode:   http.StatusCreated,
			Response: &gocardless.CustomerBankAccount{
				ID:      "BA124",
				Enabled: true,
			},
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gocardless.CustomerBankAccountCreateRequest) (*gocardless.CustomerBankAccount, error) {
		return c.CustomerBankAccounts().Create
	})
}

func TestCustomerBankAccountsGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.CustomerBankAccount]{
		{
			Name:         "successful get",
			ID:           "BA123",
			ExpectedPath: "/customer_bank_accounts/BA123",
			ResourceKey:  "customer_bank_accounts",
			StatusCode:   http.StatusOK,
			Response: &gocardless.CustomerBankAccount{
				ID:                  "BA123",
				AccountNumberEnding: "11",
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.CustomerBankAccount, error) {
		return c.CustomerBankAccounts().Get
	})
}

func TestCustomerBankAccountsDisable(t *testing.T) {
	t.Parallel()

	tests := []TestActionOperation[gocardless.CustomerBankAccount]{
		{
			Name:         "successful disable",
			ID:           "BA123",
			ExpectedPath: "/customer_bank_accounts/BA123/actions/disable",
			ResourceKey:  "customer_bank_accounts",
			StatusCode:   http.StatusOK,
			Response: &gocardless.CustomerBankAccount{
				ID:      "BA123",
				Enabled: false,
			},
		},
		{
			Name:         "already disabled",
			ID:           "BA456",
			ExpectedPath: "/customer_bank_accounts/BA456/actions/disable",
			ResourceKey:  "customer_bank_accounts",
			StatusCode:   http.StatusUnprocessableEntity,
			WantErr:      true,
			ErrMessage:   "Bank account already disabled",
		},
	}

	RunActionTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.CustomerBankAccount, error) {
		return c.CustomerBankAccounts().Disable
	})
}

func TestCustomerBankAccountsAll(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"BA001"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"BA002"}, After: nil},
	}

	server := newPaginatedServer(t, "/customer_bank_accounts", "customer_bank_accounts", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	accounts, err := client.CustomerBankAccounts().All(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
}
