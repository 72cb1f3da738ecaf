package gocardless_test

import (
	"testing"
	"time"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParamsToValues(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	params := gocardless.NewListParams().
		WithAfter("CU123").
		WithLimit(100).
		WithCreatedAtGte(created).
		WithFilter("status", "confirmed", "paid_out").
		WithFilter("currency", "GBP")

	values := params.ToValues()

	assert.Equal(t, "CU123", values.Get("after"))
	assert.Equal(t, "100", values.Get("limit"))
	assert.Equal(t, "2026-01-15T10:30:00Z", values.Get("created_at[gte]"))
	assert.Equal(t, "confirmed,paid_out", values.Get("status"))
	assert.Equal(t, "GBP", values.Get("currency"))
	assert.Empty(t, values.Get("before"))
}

func TestListParamsToValuesEmpty(t *testing.T) {
	t.Parallel()

	values := gocardless.NewListParams().ToValues()

	assert.Empty(t, values)
}

func TestListParamsClone(t *testing.T) {
	t.Parallel()

	original := gocardless.NewListParams().
		WithAfter("CU123").
		WithFilter("status", "active")

	clone := original.Clone()
	clone.WithAfter("CU456").WithFilter("status", "cancelled")

	assert.Equal(t, "CU123", original.After)
	assert.Equal(t, []string{"active"}, original.Filters["status"])
	assert.Equal(t, "CU456", clone.After)
	assert.Equal(t, []string{"active", "cancelled"}, clone.Filters["status"])
}

func TestListParamsCloneNilFilters(t *testing.T) {
	t.Parallel()

	original := &gocardless.ListParams{Limit: 10}

	clone := original.Clone()
	require.NotNil(t, clone.Filters)
	assert.Equal(t, 10, clone.Limit)

	clone.WithFilter("status", "active")
	assert.Empty(t, original.Filters)
}
