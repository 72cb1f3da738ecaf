// Package http provides the shared HTTP executor used by every resource
// service: authentication, versioning and idempotency headers, the JSON
// codec, transient-failure retries, and API error decoding.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/gocardless/gocardless-go/internal/auth"
	"github.com/gocardless/gocardless-go/internal/constants"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a single base URL.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       gocardless.Logger
	debug        bool
	userAgent    string
	cache        gocardless.Cache
	cacheTTL     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger gocardless.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging via the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithCache enables caching of GET responses.
func WithCache(cache gocardless.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a client for the given base URL. A nil token manager
// sends requests without authentication, which only makes sense against a
// test server.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// retryablehttp logs through the structured logger instead of its own.
	retryClient.Logger = nil
	// Keep the final response when retries are exhausted so a persistent
	// 5xx/429 still decodes into an APIError instead of a generic error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Non-2xx responses are decoded into a
// *gocardless.APIError which is returned as the error alongside the raw
// response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == http.MethodGet && c.cache != nil {
		if cached := c.cachedResponse(ctx, req); cached != nil {
			return cached, nil
		}
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"query":  req.Query.Encode(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 400 {
		return resp, c.decodeError(resp)
	}

	if req.Method == http.MethodGet && c.cache != nil {
		c.storeResponse(ctx, req, resp)
	}

	return resp, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(constants.HeaderAPIVersion, gocardless.APIVersion)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// The API replays the original response for a repeated key, so every
	// create is safe against client-side retries.
	if req.Method == http.MethodPost && httpReq.Header.Get(constants.HeaderIdempotencyKey) == "" {
		httpReq.Header.Set(constants.HeaderIdempotencyKey, uuid.NewString())
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func (c *Client) decodeError(resp *Response) error {
	apiErr, err := gocardless.ParseAPIError(resp.Body)
	if err != nil {
		// Some intermediaries answer with non-JSON bodies; keep the status
		// code visible either way.
		return fmt.Errorf("API error (status %d): %w", resp.StatusCode, err)
	}

	if apiErr.Code == 0 {
		apiErr.Code = resp.StatusCode
	}

	return apiErr
}

func (c *Client) cachedResponse(ctx context.Context, req *Request) *Response {
	entry, err := c.cache.Get(ctx, gocardless.CacheKey(req.Method, req.Path, req.Query))
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: entry.StatusCode,
		Body:       entry.Body,
	}
}

func (c *Client) storeResponse(ctx context.Context, req *Request, resp *Response) {
	ttl := c.cacheTTL
	if ttl == 0 {
		ttl = constants.DefaultCacheTTL
	}

	entry := &gocardless.CacheEntry{
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		StoredAt:   time.Now(),
		ExpiresAt:  time.Now().Add(ttl),
	}

	err := c.cache.Set(ctx, gocardless.CacheKey(req.Method, req.Path, req.Query), entry)
	if err != nil && c.logger != nil {
		c.logger.Warn("failed to cache response", map[string]interface{}{
			"path":  req.Path,
			"error": err.Error(),
		})
	}
}
