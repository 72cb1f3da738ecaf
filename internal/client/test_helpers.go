package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// NewTestClient creates a client pointed at a test server.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&gocardless.Config{
		AccessToken: "test-token",
		Endpoint:    baseURL,
	})
	require.NoError(t, err)

	return client
}

// writeEnvelope encodes a single resource under its plural key, matching the
// wire convention {"customers": {...}}.
func writeEnvelope(t *testing.T, writer http.ResponseWriter, statusCode int, key string, resource interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{key: resource})
}

// writeListEnvelope encodes a page of resources with cursor meta.
func writeListEnvelope(t *testing.T, writer http.ResponseWriter, key string, items interface{}, after *string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		key: items,
		"meta": gocardless.ListMeta{
			Cursors: gocardless.Cursors{After: after},
		},
	})
}

// writeAPIError encodes the standard error envelope.
func writeAPIError(t *testing.T, writer http.ResponseWriter, statusCode int, errType, message string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"message":    message,
			"type":       errType,
			"code":       statusCode,
			"request_id": "RQ-test",
		},
	})
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	ResourceKey  string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	ResourceKey  string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TRequest, TResponse any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	ResourceKey  string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestActionOperation represents a POST /actions/ endpoint test case.
type TestActionOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	ResourceKey  string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)
				assert.NotEmpty(t, request.Header.Get("Idempotency-Key"))

				var envelope map[string]json.RawMessage

				err := json.NewDecoder(request.Body).Decode(&envelope)
				assert.NoError(t, err)
				assert.Contains(t, envelope, testCase.ResourceKey)

				if testCase.WantErr {
					writeAPIError(t, writer, testCase.StatusCode, "validation_failed", testCase.ErrMessage)

					return
				}

				writeEnvelope(t, writer, testCase.StatusCode, testCase.ResourceKey, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			createFn := createFunc(client)
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)

				if testCase.WantErr {
					writeAPIError(t, writer, testCase.StatusCode, "invalid_api_usage", "Resource not found")

					return
				}

				writeEnvelope(t, writer, testCase.StatusCode, testCase.ResourceKey, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			getFn := getFunc(client)
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestUpdateOperation[TRequest, TResponse],
	updateFunc func(*Client) func(context.Context, string, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "PUT", request.Method)

				var envelope map[string]json.RawMessage

				err := json.NewDecoder(request.Body).Decode(&envelope)
				assert.NoError(t, err)
				assert.Contains(t, envelope, testCase.ResourceKey)

				writeEnvelope(t, writer, testCase.StatusCode, testCase.ResourceKey, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			updateFn := updateFunc(client)
			result, err := updateFn(context.Background(), testCase.ID, testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunActionTests runs a series of POST /actions/ endpoint tests.
func RunActionTests[TResponse any](
	t *testing.T,
	tests []TestActionOperation[TResponse],
	actionFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)
				assert.NotEmpty(t, request.Header.Get("Idempotency-Key"))

				if testCase.WantErr {
					writeAPIError(t, writer, testCase.StatusCode, "invalid_state", testCase.ErrMessage)

					return
				}

				writeEnvelope(t, writer, testCase.StatusCode, testCase.ResourceKey, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			actionFn := actionFunc(client)
			result, err := actionFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// cursorPage describes one page served by newPaginatedServer.
type cursorPage struct {
	IDs   []string
	After *string
}

// newPaginatedServer serves a sequence of cursor pages for a list endpoint.
// Each page holds resources of the form {"id": "..."} under the plural key;
// the request's "after" query parameter selects the page.
func newPaginatedServer(t *testing.T, expectedPath, key string, pages map[string]cursorPage) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		cursor := "<nil>"
		if request.URL.Query().Has("after") {
			cursor = request.URL.Query().Get("after")
		}

		page, ok := pages[cursor]
		if !ok {
			writeAPIError(t, writer, http.StatusNotFound, "invalid_api_usage", "unknown cursor "+cursor)

			return
		}

		items := make([]map[string]string, len(page.IDs))
		for i, id := range page.IDs {
			items[i] = map[string]string{"id": id}
		}

		writeListEnvelope(t, writer, key, items, page.After)
	}))
}

// StringPtr is a helper function that returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}
