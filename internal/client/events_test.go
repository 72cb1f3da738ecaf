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

func TestEventsGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.Event]{
		{
			Name:         "successful get",
			ID:           "EV123",
			ExpectedPath: "/events/EV123",
			ResourceKey:  "events",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Event{
				ID:           "EV123",
				ResourceType: "payments",
				Action:       "confirmed",
				Links:        gocardless.EventLinks{Payment: "PM123"},
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Event, error) {
		return c.Events().Get
	})
}

func TestEventsListByResource(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/events", request.URL.Path)
		assert.Equal(t, "MD123", request.URL.Query().Get("mandate"))
		assert.Equal(t, "cancelled", request.URL.Query().Get("action"))

		writeListEnvelope(t, writer, "events", []gocardless.Event{
			{
				ID:           "EV001",
				ResourceType: "mandates",
				Action:       "cancelled",
				Details:      gocardless.EventDetails{Origin: "bank", Cause: "bank_account_closed"},
				Links:        gocardless.EventLinks{Mandate: "MD123"},
			},
		}, nil)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := gocardless.NewListParams().
		WithFilter("mandate", "MD123").
		WithFilter("action", "cancelled")

	result, err := client.Events().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "bank_account_closed", result.Events[0].Details.Cause)
}

func TestEventsAll(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"EV001", "EV002"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"EV003", "EV004"}, After: nil},
	}

	server := newPaginatedServer(t, "/events", "events", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	var pageCount int

	for result := range client.Events().Pages(context.Background(), nil) {
		require.NoError(t, result.Err)

		pageCount++
	}

	assert.Equal(t, 2, pageCount)
}
