package gocardless

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ListParams describes the query portion of a list request: cursor
// position, page size, created_at windows, and endpoint-specific filters.
// A ListParams value is owned by a single pagination run; All and Pages
// copy the value they are given so the caller's params are never mutated.
type ListParams struct {
	// After is the cursor returned by the previous page, or empty for the
	// first page of a run.
	After string
	// Before requests results before the given cursor.
	Before string
	// Limit is the page size (the API default is 50, maximum 500).
	Limit int

	// CreatedAt windows. Zero values are omitted.
	CreatedAtGt  time.Time
	CreatedAtGte time.Time
	CreatedAtLt  time.Time
	CreatedAtLte time.Time

	// Filters holds endpoint-specific filters, e.g. "status", "currency",
	// "customer", "mandate".
	Filters map[string][]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string][]string),
	}
}

// WithAfter sets the after cursor.
func (p *ListParams) WithAfter(after string) *ListParams {
	p.After = after

	return p
}

// WithBefore sets the before cursor.
func (p *ListParams) WithBefore(before string) *ListParams {
	p.Before = before

	return p
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithCreatedAtGte filters on created_at[gte].
func (p *ListParams) WithCreatedAtGte(t time.Time) *ListParams {
	p.CreatedAtGte = t

	return p
}

// WithCreatedAtLte filters on created_at[lte].
func (p *ListParams) WithCreatedAtLte(t time.Time) *ListParams {
	p.CreatedAtLte = t

	return p
}

// WithFilter appends values to an endpoint-specific filter.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// Clone returns a deep copy so a pagination run can advance its own cursor
// without touching the caller's params.
func (p *ListParams) Clone() *ListParams {
	clone := *p

	clone.Filters = make(map[string][]string, len(p.Filters))
	for key, values := range p.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return &clone
}

// ToValues converts the params to URL query values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p.After != "" {
		values.Set("after", p.After)
	}

	if p.Before != "" {
		values.Set("before", p.Before)
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	setTimeValue(values, "created_at[gt]", p.CreatedAtGt)
	setTimeValue(values, "created_at[gte]", p.CreatedAtGte)
	setTimeValue(values, "created_at[lt]", p.CreatedAtLt)
	setTimeValue(values, "created_at[lte]", p.CreatedAtLte)

	for key, filterValues := range p.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}

func setTimeValue(values url.Values, key string, t time.Time) {
	if !t.IsZero() {
		values.Set(key, t.UTC().Format(time.RFC3339))
	}
}
