package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoAccessTokenConfigured = errors.New("no access token configured, use 'gc config set-token' to add one")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
	ErrUnknownEnvironment      = errors.New("environment must be 'live' or 'sandbox'")
	ErrUnknownOutputFormat     = errors.New("output format must be 'table', 'json', or 'yaml'")
)

// Validation errors.
var (
	ErrAmountRequired   = errors.New("--amount flag is required")
	ErrCurrencyRequired = errors.New("--currency flag is required")
	ErrMandateRequired  = errors.New("--mandate flag is required")
	ErrInvalidAmount    = errors.New("amount must be a positive integer in the smallest currency unit")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
