package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestCustomersCreate(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[gocardless.CustomerCreateRequest, gocardless.Customer]{
		{
			Name: "successful create",
			Request: &gocardless.CustomerCreateRequest{
				Email:       "user@example.com",
				GivenName:   "Frank",
				FamilyName:  "Osborne",
				CountryCode: "GB",
			},
			ExpectedPath: "/customers",
			ResourceKey:  "customers",
			StatusCode:   http.StatusCreated,
			Response: &gocardless.Customer{
				ID:        "CU123",
				CreatedAt: time.Now(),
				Email:     "user@example.com",
			},
		},
		{
			Name: "validation failure",
			Request: &gocardless.CustomerCreateRequest{
				Email: "not-an-email",
			},
			ExpectedPath: "/customers",
			ResourceKey:  "customers",
			StatusCode:   http.StatusUnprocessableEntity,
			WantErr:      true,
			ErrMessage:   "is not a valid email address",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gocardless.CustomerCreateRequest) (*gocardless.Customer, error) {
		return c.Customers().Create
	})
}

func TestCustomersGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[gocardless.Customer]{
		{
			Name:         "successful get",
			ID:           "CU123",
			ExpectedPath: "/customers/CU123",
			ResourceKey:  "customers",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Customer{
				ID:    "CU123",
				Email: "user@example.com",
			},
		},
		{
			Name:         "not found",
			ID:           "CU404",
			ExpectedPath: "/customers/CU404",
			ResourceKey:  "customers",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "Resource not found",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gocardless.Customer, error) {
		return c.Customers().Get
	})
}

func TestCustomersGetEmptyID(t *testing.T) {
	t.Parallel()

	client := NewTestClient(t, "http://localhost:1")

	customer, err := client.Customers().Get(context.Background(), "")
	require.ErrorIs(t, err, gocardless.ErrIdentityRequired)
	assert.Nil(t, customer)
}

func TestCustomersUpdate(t *testing.T) {
	t.Parallel()

	tests := []TestUpdateOperation[gocardless.CustomerUpdateRequest, gocardless.Customer]{
		{
			Name: "successful update",
			ID:   "CU123",
			Request: &gocardless.CustomerUpdateRequest{
				GivenName: "Francis",
			},
			ExpectedPath: "/customers/CU123",
			ResourceKey:  "customers",
			StatusCode:   http.StatusOK,
			Response: &gocardless.Customer{
				ID:        "CU123",
				GivenName: "Francis",
			},
		},
	}

	RunUpdateTests(t, tests, func(c *Client) func(context.Context, string, *gocardless.CustomerUpdateRequest) (*gocardless.Customer, error) {
		return c.Customers().Update
	})
}

func TestCustomersRemove(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/customers/CU123", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	err := client.Customers().Remove(context.Background(), "CU123")
	require.NoError(t, err)

	err = client.Customers().Remove(context.Background(), "")
	require.ErrorIs(t, err, gocardless.ErrIdentityRequired)
}

func TestCustomersList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/customers", request.URL.Path)
		assert.Equal(t, "25", request.URL.Query().Get("limit"))

		items := []gocardless.Customer{
			{ID: "CU001", Email: "one@example.com"},
			{ID: "CU002", Email: "two@example.com"},
		}
		writeListEnvelope(t, writer, "customers", items, StringPtr("CU002"))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := gocardless.NewListParams().WithLimit(25)
	result, err := client.Customers().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Customers, 2)
	assert.Equal(t, "CU001", result.Customers[0].ID)
	require.NotNil(t, result.Meta.Cursors.After)
	assert.Equal(t, "CU002", *result.Meta.Cursors.After)
}

func TestCustomersAll(t *testing.T) {
	t.Parallel()

	// The middle page hands back an empty-string cursor, which is a real
	// cursor and must be sent verbatim on the following request.
	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"CU001", "CU002"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"CU003"}, After: StringPtr("")},
		"":      {IDs: []string{"CU004"}, After: nil},
	}

	server := newPaginatedServer(t, "/customers", "customers", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	customers, err := client.Customers().All(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, customers, 4)

	ids := make([]string, len(customers))
	for i, customer := range customers {
		ids[i] = customer.ID
	}

	assert.Equal(t, []string{"CU001", "CU002", "CU003", "CU004"}, ids)
}

func TestCustomersAllIndependentRuns(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"CU001"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"CU002"}, After: nil},
	}

	server := newPaginatedServer(t, "/customers", "customers", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	first := client.Customers().All(context.Background(), nil)
	second := client.Customers().All(context.Background(), nil)

	// Drain the first run fully before starting the second; both must see
	// the whole sequence from the beginning.
	firstItems, err := first.All()
	require.NoError(t, err)

	secondItems, err := second.All()
	require.NoError(t, err)

	assert.Len(t, firstItems, 2)
	assert.Len(t, secondItems, 2)
	assert.Equal(t, firstItems[0].ID, secondItems[0].ID)
}

func TestCustomersPages(t *testing.T) {
	t.Parallel()

	pages := map[string]cursorPage{
		"<nil>": {IDs: []string{"CU001", "CU002"}, After: StringPtr("c1")},
		"c1":    {IDs: []string{"CU003"}, After: nil},
	}

	server := newPaginatedServer(t, "/customers", "customers", pages)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	var sizes []int

	for result := range client.Customers().Pages(context.Background(), nil) {
		require.NoError(t, result.Err)

		sizes = append(sizes, len(result.Items))
	}

	assert.Equal(t, []int{2, 1}, sizes)
}

func TestCustomersAllFetchError(t *testing.T) {
	t.Parallel()

	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls++
		if calls == 1 {
			writeListEnvelope(t, writer, "customers", []gocardless.Customer{{ID: "CU001"}}, StringPtr("c1"))

			return
		}

		writeAPIError(t, writer, http.StatusForbidden, "invalid_api_usage", "access token revoked")
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	iterator := client.Customers().All(context.Background(), nil)

	first, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "CU001", first.ID)

	_, err = iterator.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token revoked")

	// The failure is terminal.
	_, err = iterator.Next()
	require.Error(t, err)
}

func TestCustomersListResultDecodesEnvelope(t *testing.T) {
	t.Parallel()

	body := `{
		"customers": [{"id": "CU123", "email": "user@example.com"}],
		"meta": {"cursors": {"before": null, "after": "CU123"}, "limit": 50}
	}`

	var result gocardless.CustomerListResult

	err := json.Unmarshal([]byte(body), &result)
	require.NoError(t, err)
	require.Len(t, result.Customers, 1)
	assert.Equal(t, 50, result.Meta.Limit)
	require.NotNil(t, result.Meta.Cursors.After)
	assert.Equal(t, "CU123", *result.Meta.Cursors.After)
	assert.Nil(t, result.Meta.Cursors.Before)
}
