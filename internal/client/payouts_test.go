package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestPayoutsGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.Payout]{
		{
			Name:         "successful get",
			ID:           "PO123",
			ExpectedPath: "/payouts/PO123",
			ResourceKey:  "payouts",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Payout{
				ID:           "PO123",
				Amount:       13450,
				DeductedFees: 120,
				Currency:     gocardless.CurrencyGBP,
				Status:       gocardless.PayoutStatusPaid,
			},
		},
		{
			Name:         "not found",
			ID:           "PO404",
			ExpectedPath: "/payouts/PO404",
			ResourceKey:  "payouts",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Payout, error) {
		return c.Payouts().Get
	})
}

func TestPayoutsListByStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/payouts", request.URL.Path)
		assert.Equal(t, "pending", request.URL.Query().Get("status"))

		writeListEnvelope(t, writer, "payouts", []gocardless.Payout{
			{ID: "PO001", Status: gocardless.PayoutStatusPending},
		}, nil)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := gocardless.NewListParams().WithFilter("status", "pending")
	result, err := client.Payouts().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Payouts, 1)
	assert.Equal(t, gocardless.PayoutStatusPending, result.Payouts[0].Status)
}

func TestPayoutsAll(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"PO001", "PO002"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"PO003"}, After: nil},
	}

	server := newPaginatedServer(t, "/payouts", "payouts", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	payouts, err := client.Payouts().All(context.Background(), nil).All()
	require.NoError(t, err)
	assert.Len(t, payouts, 3)
}
