package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocardless/gocardless-go/internal/constants"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   int
		currency gocardless.Currency
		expected string
	}{
		{name: "whole pounds", amount: 1000, currency: gocardless.CurrencyGBP, expected: "10.00 GBP"},
		{name: "with pence", amount: 1234, currency: gocardless.CurrencyGBP, expected: "12.34 GBP"},
		{name: "under one unit", amount: 5, currency: gocardless.CurrencyEUR, expected: "0.05 EUR"},
		{name: "zero", amount: 0, currency: gocardless.CurrencyGBP, expected: "0.00 GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatAmount(tt.amount, tt.currency))
		})
	}
}

func TestFormatInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "monthly", formatInterval(1, gocardless.IntervalUnitMonthly))
	assert.Equal(t, "every 3 months", formatInterval(3, gocardless.IntervalUnitMonthly))
	assert.Equal(t, "every 2 weeks", formatInterval(2, gocardless.IntervalUnitWeekly))
	assert.Equal(t, "yearly", formatInterval(0, gocardless.IntervalUnitYearly))
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatTime(time.Time{}))

	created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 09:30:00", formatTime(created))
}

func TestCustomerDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Acme Ltd", customerDisplayName(gocardless.Customer{
		CompanyName: "Acme Ltd",
		GivenName:   "Frank",
	}))
	assert.Equal(t, "Frank Osborne", customerDisplayName(gocardless.Customer{
		GivenName:  "Frank",
		FamilyName: "Osborne",
	}))
	assert.Equal(t, "", customerDisplayName(gocardless.Customer{Email: "user@example.com"}))
}

func TestListParamsFromFlags(t *testing.T) {
	t.Parallel()

	t.Run("both set", func(t *testing.T) {
		t.Parallel()

		values := listParamsFromFlags(25, "cursor-1").ToValues()
		assert.Equal(t, "25", values.Get("limit"))
		assert.Equal(t, "cursor-1", values.Get("after"))
	})

	t.Run("defaults omitted", func(t *testing.T) {
		t.Parallel()

		values := listParamsFromFlags(0, "").ToValues()
		assert.False(t, values.Has("limit"))
		assert.False(t, values.Has("after"))
	})
}

func TestValidateConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		key         string
		value       string
		expectedErr error
	}{
		{name: "valid environment", key: "environment", value: "sandbox"},
		{name: "invalid environment", key: "environment", value: "staging", expectedErr: constants.ErrUnknownEnvironment},
		{name: "valid output", key: "output", value: "json"},
		{name: "invalid output", key: "output", value: "csv", expectedErr: constants.ErrUnknownOutputFormat},
		{name: "token accepts anything", key: "token", value: "live_xxx"},
		{name: "endpoint accepts anything", key: "endpoint", value: "https://api.example.com"},
		{name: "unknown key", key: "color", value: "auto", expectedErr: constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateConfigValue(tt.key, tt.value)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsKnownConfigKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"token", "environment", "endpoint", "output"} {
		assert.True(t, isKnownConfigKey(key), key)
	}

	assert.False(t, isKnownConfigKey("api"))
}
