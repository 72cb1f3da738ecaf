package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// Static errors for err113 compliance.
var (
	ErrMissingResourceKey = errors.New("response envelope missing resource key")
)

// requestEnvelope wraps a request body under its resource key, matching the
// wire convention {"payments": {...}}.
func requestEnvelope(key string, body interface{}) map[string]interface{} {
	return map[string]interface{}{key: body}
}

// actionEnvelope wraps action parameters under the "data" key used by
// /actions/ endpoints.
func actionEnvelope(metadata gocardless.Metadata) map[string]interface{} {
	data := map[string]interface{}{}
	if len(metadata) > 0 {
		data["metadata"] = metadata
	}

	return map[string]interface{}{"data": data}
}

// decodeResource extracts the single resource under key from a response
// envelope like {"customers": {...}}.
func decodeResource[T any](body []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingResourceKey, key)
	}

	var resource T

	err = json.Unmarshal(raw, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s resource: %w", key, err)
	}

	return &resource, nil
}

// listPage fetches one page of a list endpoint and splits the envelope into
// its plural-keyed items and pagination meta.
func listPage[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, key string) ([]T, gocardless.ListMeta, error) {
	var meta gocardless.ListMeta

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, meta, fmt.Errorf("listing %s: %w", key, err)
	}

	var envelope map[string]json.RawMessage

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, meta, fmt.Errorf("parsing %s list envelope: %w", key, err)
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, meta, fmt.Errorf("%w: %s", ErrMissingResourceKey, key)
	}

	var items []T

	err = json.Unmarshal(raw, &items)
	if err != nil {
		return nil, meta, fmt.Errorf("parsing %s list: %w", key, err)
	}

	if rawMeta, ok := envelope["meta"]; ok {
		err = json.Unmarshal(rawMeta, &meta)
		if err != nil {
			return nil, meta, fmt.Errorf("parsing %s list meta: %w", key, err)
		}
	}

	return items, meta, nil
}

// pageFetcher binds a list endpoint to the pagination driver. The returned
// fetcher owns a copy of the caller's params; the driver's cursor overrides
// the params cursor on every call after the first, and an empty-string
// cursor is sent verbatim.
func pageFetcher[T any](httpClient *http.Client, path, key string, params *gocardless.ListParams) gocardless.PageFetcher[T] {
	run := cloneListParams(params)

	return func(ctx context.Context, after *string) (*gocardless.Page[T], error) {
		query := run.ToValues()
		if after != nil {
			query.Set("after", *after)
		}

		items, meta, err := listPage[T](ctx, httpClient, path, query, key)
		if err != nil {
			return nil, err
		}

		return &gocardless.Page[T]{Items: items, After: meta.Cursors.After}, nil
	}
}

func cloneListParams(params *gocardless.ListParams) *gocardless.ListParams {
	if params == nil {
		return gocardless.NewListParams()
	}

	return params.Clone()
}

func paginationOptions(params *gocardless.ListParams) *gocardless.PaginationOptions {
	options := gocardless.DefaultPaginationOptions()
	if params != nil && params.Limit > 0 {
		options.Limit = params.Limit
	}

	return options
}

// validateID rejects empty path identifiers before URL construction.
func validateID(id, resource string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", resource, gocardless.ErrIdentityRequired)
	}

	return nil
}
