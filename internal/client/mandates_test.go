package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestMandatesCreate(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[gocardless.MandateCreateRequest, gocardless.Mandate]{
		{
			Name: "successful create",
			Request: &gocardless.MandateCreateRequest{
				Scheme: gocardless.SchemeBacs,
				Links:  gocardless.MandateCreateLinks{CustomerBankAccount: "BA123"},
			},
			ExpectedPath: "/mandates",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusCreated,
			Response: &gocardless.Mandate{
				ID:     "MD123",
				Scheme: gocardless.SchemeBacs,
				Status: gocardless.MandateStatusPendingSubmission,
				Links:  gocardless.MandateLinks{CustomerBankAccount: "BA123"},
			},
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gocardless.MandateCreateRequest) (*gocardless.Mandate, error) {
		return c.Mandates().Create
	})
}

func TestMandatesGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.Mandate]{
		{
			Name:         "successful get",
			ID:           "MD123",
			ExpectedPath: "/mandates/MD123",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Mandate{
				ID:     "MD123",
				Status: gocardless.MandateStatusActive,
			},
		},
		{
			Name:         "not found",
			ID:           "MD404",
			ExpectedPath: "/mandates/MD404",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Mandate, error) {
		return c.Mandates().Get
	})
}

func TestMandatesUpdate(t *testing.T) {
	t.Parallel()

	tests := []TestUpdateOperation[gocardless.MandateUpdateRequest, gocardless.Mandate]{
		{
			Name: "metadata update",
			ID:   "MD123",
			Request: &gocardless.MandateUpdateRequest{
				Metadata: gocardless.Metadata{"contract": "CT-9"},
			},
			ExpectedPath: "/mandates/MD123",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Mandate{
				ID:       "MD123",
				Metadata: gocardless.Metadata{"contract": "CT-9"},
			},
		},
	}

	RunUpdateTests(t, tests, func(c *Client) func(context.Context, string, *gocardless.MandateUpdateRequest) (*gocardless.Mandate, error) {
		return c.Mandates().Update
	})
}

func TestMandatesCancel(t *testing.T) {
	t.Parallel()

	tests := []TestActionOperation[gocardless.Mandate]{
		{
			Name:         "successful cancel",
			ID:           "MD123",
			ExpectedPath: "/mandates/MD123/actions/cancel",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Mandate{
				ID:     "MD123",
				Status: gocardless.MandateStatusCancelled,
			},
		},
	}

	RunActionTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Mandate, error) {
		return func(ctx context.Context, id string) (*gocardless.Mandate, error) {
			return c.Mandates().Cancel(ctx, id, nil)
		}
	})
}

func TestMandatesReinstate(t *testing.T) {
	t.Parallel()

	tests := []TestActionOperation[gocardless.Mandate]{
		{
			Name:         "successful reinstate",
			ID:           "MD123",
			ExpectedPath: "/mandates/MD123/actions/reinstate",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Mandate{
				ID:     "MD123",
				Status: gocardless.MandateStatusSubmitted,
			},
		},
		{
			Name:         "mandate expired",
			ID:           "MD456",
			ExpectedPath: "/mandates/MD456/actions/reinstate",
			ResourceKey:  "mandates",
			StatusCode:   http.StatusUnprocessableEntity,
			WantErr:      true,
			ErrMessage:   "Mandate cannot be reinstated",
		},
	}

	RunActionTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Mandate, error) {
		return func(ctx context.Context, id string) (*gocardless.Mandate, error) {
			return c.Mandates().Reinstate(ctx, id, nil)
		}
	})
}

func TestMandatesAll(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"MD001"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"MD002"}, After: nil},
	}

	server := newPaginatedServer(t, "/mandates", "mandates", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	mandates, err := client.Mandates().All(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, mandates, 2)
	assert.Equal(t, "MD001", mandates[0].ID)
	assert.Equal(t, "MD002", mandates[1].ID)
}
