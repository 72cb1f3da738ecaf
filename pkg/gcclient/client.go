// Package gcclient provides the main entry point for creating GoCardless API clients
package gcclient

import (
	"fmt"
	"strings"

	"github.com/gocardless/gocardless-go/internal/client"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// New creates a new GoCardless API client. The endpoint is resolved from
// Config.Environment unless Config.Endpoint is set explicitly, which wins
// and is how test servers are pointed at.
func New(config *gocardless.Config) (gocardless.Client, error) {
	if config == nil {
		return nil, gocardless.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, gocardless.ErrAccessTokenRequired
	}

	endpoint, err := resolveEndpoint(config)
	if err != nil {
		return nil, err
	}

	config.Endpoint = endpoint

	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// resolveEndpoint maps the configured environment to its API endpoint.
func resolveEndpoint(config *gocardless.Config) (string, error) {
	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		return endpoint, nil
	}

	switch config.Environment {
	case gocardless.EnvironmentLive, "":
		return gocardless.LiveEndpoint, nil
	case gocardless.EnvironmentSandbox:
		return gocardless.SandboxEndpoint, nil
	default:
		return "", fmt.Errorf("%w: %q", gocardless.ErrUnknownEnvironment, config.Environment)
	}
}

// NewWithToken creates a live client with just an access token.
func NewWithToken(token string) (gocardless.Client, error) {
	return New(&gocardless.Config{
		AccessToken: token,
		Environment: gocardless.EnvironmentLive,
	})
}

// NewSandboxWithToken creates a sandbox client with just an access token.
func NewSandboxWithToken(token string) (gocardless.Client, error) {
	return New(&gocardless.Config{
		AccessToken: token,
		Environment: gocardless.EnvironmentSandbox,
	})
}
