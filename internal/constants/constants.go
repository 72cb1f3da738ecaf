package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API versioning and headers.
const (
	// HeaderAPIVersion is the version header sent on every request.
	HeaderAPIVersion = "GoCardless-Version"

	// HeaderIdempotencyKey makes POST requests safe to repeat.
	HeaderIdempotencyKey = "Idempotency-Key"

	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "gocardless-go/1.0"
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the API applies when none is given.
	DefaultPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 500
)

// Cache sizes and TTLs.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 1 * time.Minute
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2
)
