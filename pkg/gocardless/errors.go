package gocardless

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error type values returned by the API.
const (
	ErrorTypeGoCardless       = "gocardless"
	ErrorTypeInvalidAPIUsage  = "invalid_api_usage"
	ErrorTypeInvalidState     = "invalid_state"
	ErrorTypeValidationFailed = "validation_failed"
)

// ValidationError describes one failed field in a validation_failed error.
type ValidationError struct {
	Reason         string `json:"reason,omitempty"          yaml:"reason,omitempty"`
	Message        string `json:"message"                   yaml:"message"`
	Field          string `json:"field,omitempty"           yaml:"field,omitempty"`
	RequestPointer string `json:"request_pointer,omitempty" yaml:"request_pointer,omitempty"`
}

// APIError represents the error envelope returned by the GoCardless API.
type APIError struct {
	Message          string            `json:"message"                     yaml:"message"`
	Type             string            `json:"type"                        yaml:"type"`
	Code             int               `json:"code"                        yaml:"code"`
	RequestID        string            `json:"request_id,omitempty"        yaml:"request_id,omitempty"`
	DocumentationURL string            `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
	Errors           []ValidationError `json:"errors,omitempty"            yaml:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s (code: %d, %d field errors)", e.Type, e.Message, e.Code, len(e.Errors))
	}

	return fmt.Sprintf("%s: %s (code: %d)", e.Type, e.Message, e.Code)
}

// FirstError returns the first field-level error or nil.
func (e *APIError) FirstError() *ValidationError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// errorEnvelope is the top-level wire shape of an error response.
type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// ParseAPIError parses an error response body. The body is expected to be
// the {"error": {...}} envelope; a decode failure is reported as such
// rather than swallowed.
func ParseAPIError(data []byte) (*APIError, error) {
	var envelope errorEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	if envelope.Error == nil {
		return nil, ErrMalformedErrorResponse
	}

	return envelope.Error, nil
}

// HTTP status codes the API uses for its error taxonomy.
const (
	StatusNotFound             = 404
	StatusAuthenticationFailed = 401
	StatusPermissionDenied     = 403
	StatusInvalidState         = 409
	StatusValidationFailed     = 422
	StatusRateLimited          = 429
)

// IsNotFound checks if the error is a resource-not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, StatusNotFound)
}

// IsAuthenticationFailed checks if the error reports bad credentials.
func IsAuthenticationFailed(err error) bool {
	return hasCode(err, StatusAuthenticationFailed)
}

// IsPermissionDenied checks if the error reports insufficient permissions.
func IsPermissionDenied(err error) bool {
	return hasCode(err, StatusPermissionDenied)
}

// IsInvalidState checks if the error is an invalid_state error.
func IsInvalidState(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeInvalidState
	}

	return false
}

// IsValidationFailed checks if the error is a validation_failed error.
func IsValidationFailed(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeValidationFailed
	}

	return false
}

// IsRateLimited checks if the error reports request throttling.
func IsRateLimited(err error) bool {
	return hasCode(err, StatusRateLimited)
}

func hasCode(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrAccessTokenRequired    = errors.New("access token is required")
	ErrEndpointRequired       = errors.New("API endpoint is required")
	ErrUnknownEnvironment     = errors.New("unknown environment")
	ErrIdentityRequired       = errors.New("resource identity is required")
	ErrNoMoreItems            = errors.New("no more items")
	ErrMalformedErrorResponse = errors.New("malformed error response")
	ErrSessionTokenRequired   = errors.New("session token is required")
	ErrCacheDisabled          = errors.New("cache disabled")
	ErrCacheEntryNotFound     = errors.New("cache entry not found")
	ErrCacheEntryExpired      = errors.New("cache entry expired")
	ErrUnsupportedCacheType   = errors.New("unsupported cache type")
	ErrNATSConfigRequired     = errors.New("NATS configuration required for NATS cache")
	ErrUnknownConfigKey       = errors.New("unknown configuration key")
)
