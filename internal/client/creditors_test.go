package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestCreditorsCreate(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[gocardless.CreditorCreateRequest, gocardless.Creditor]{
		{
			Name: "successful create",
			Request: &gocardless.CreditorCreateRequest{
				Name:        "The Wine Club",
				CountryCode: "GB",
			},
			ExpectedPath: "/creditors",
			ResourceKey:  "creditors",
			StatusCode:   http.StatusCreated,
			Response: &gocardless.Creditor{
				ID:   "CR123",
				Name: "The Wine Club",
			},
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gocardless.CreditorCreateRequest) (*gocardless.Creditor, error) {
		return c.Creditors().Create
	})
}

func TestCreditorsGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.Creditor]{
		{
			Name:         "successful get",
			ID:           "CR123",
			ExpectedPath: "/creditors/CR123",
			ResourceKey:  "creditors",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Creditor{
				ID:   "CR123",
				Name: "The Wine Club",
				SchemeIdentifiers: []gocardless.SchemeIdentifier{
					{Name: "The Wine Club", Scheme: gocardless.SchemeBacs, Reference: "123456"},
				},
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Creditor, error) {
		return c.Creditors().Get
	})
}

func TestCreditorsUpdate(t *testing.T) {
	t.Parallel()

	tests := []TestUpdateOperation[gocardless.CreditorUpdateRequest, gocardless.Creditor]{
		{
			Name: "successful update",
			ID:   "CR123",
			Request: &gocardless.CreditorUpdateRequest{
				Name: "The Cheese Club",
			},
			ExpectedPath: "/creditors/CR123",
			ResourceKey:  "creditors",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Creditor{
				ID:   "CR123",
				Name: "The Cheese Club",
			},
		},
	}

	RunUpdateTests(t, tests, func(c *Client) func(context.Context, string, *gocardless.CreditorUpdateRequest) (*gocardless.Creditor, error) {
		return c.Creditors().Update
	})
}

func TestCreditorsAll(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"CR001"}, After: nil},
	}

	server := newPaginatedServer(t, "/creditors", "creditors", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	creditors, err := client.Creditors().All(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, creditors, 1)
}
