package gocardless

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterceptorRejected = errors.New("rejected")

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	chain := NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *InterceptedRequest) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *InterceptedRequest) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &InterceptedRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	t.Parallel()

	chain := NewInterceptorChain()

	reached := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *InterceptedRequest) error {
		return errInterceptorRejected
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *InterceptedRequest) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &InterceptedRequest{})
	require.ErrorIs(t, err, errInterceptorRejected)
	assert.False(t, reached)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := AuthenticationInterceptor(func(ctx context.Context) (string, error) {
		return "token-123", nil
	})

	req := &InterceptedRequest{Method: http.MethodGet, Path: "/customers"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", req.Headers.Get("Authorization"))
}

func TestAuthenticationInterceptorProviderError(t *testing.T) {
	t.Parallel()

	interceptor := AuthenticationInterceptor(func(ctx context.Context) (string, error) {
		return "", errInterceptorRejected
	})

	err := interceptor(context.Background(), &InterceptedRequest{})
	require.ErrorIs(t, err, errInterceptorRejected)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := HeaderInterceptor(map[string]string{
		"GoCardless-Version": "2015-07-06",
		"User-Agent":         "custom-agent",
	})

	req := &InterceptedRequest{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2015-07-06", req.Headers.Get("GoCardless-Version"))
	assert.Equal(t, "custom-agent", req.Headers.Get("User-Agent"))
}

func TestIdempotencyKeyInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := IdempotencyKeyInterceptor()

	t.Run("generates key for POST", func(t *testing.T) {
		t.Parallel()

		req := &InterceptedRequest{Method: http.MethodPost, Path: "/payments"}

		err := interceptor(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, req.Headers.Get("Idempotency-Key"))
	})

	t.Run("preserves caller key", func(t *testing.T) {
		t.Parallel()

		req := &InterceptedRequest{Method: http.MethodPost, Headers: http.Header{}}
		req.Headers.Set("Idempotency-Key", "caller-key")

		err := interceptor(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "caller-key", req.Headers.Get("Idempotency-Key"))
	})

	t.Run("skips GET", func(t *testing.T) {
		t.Parallel()

		req := &InterceptedRequest{Method: http.MethodGet}

		err := interceptor(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, req.Headers.Get("Idempotency-Key"))
	})
}

func TestRateLimitInterceptorCancellation(t *testing.T) {
	t.Parallel()

	interceptor := RateLimitInterceptor(1)

	// Drain the single token.
	err := interceptor(context.Background(), &InterceptedRequest{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = interceptor(ctx, &InterceptedRequest{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()
	requestInterceptor := MetricsRequestInterceptor(collector)
	responseInterceptor := MetricsResponseInterceptor(collector)

	ctx := context.Background()

	req := &InterceptedRequest{Method: http.MethodGet, Path: "/payments"}
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &InterceptedResponse{StatusCode: http.StatusOK}))

	req = &InterceptedRequest{Method: http.MethodGet, Path: "/payments"}
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &InterceptedResponse{StatusCode: http.StatusTooManyRequests}))

	metrics := collector.GetMetrics("GET /payments")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())

	assert.Nil(t, collector.GetMetrics("GET /mandates"))
}

func TestMetricsCollectorOnChange(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()

	var notified string

	collector.SetOnChange(func(endpoint string, metrics *Metrics) {
		notified = endpoint
	})

	responseInterceptor := MetricsResponseInterceptor(collector)
	err := responseInterceptor(context.Background(), &InterceptedRequest{Method: http.MethodPost, Path: "/refunds"}, &InterceptedResponse{StatusCode: http.StatusCreated})
	require.NoError(t, err)

	assert.Equal(t, "POST /refunds", notified)
}
