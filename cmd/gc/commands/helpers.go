// Package commands implements the gc CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gocardless/gocardless-go/internal/constants"
	"github.com/gocardless/gocardless-go/internal/logging"
	"github.com/gocardless/gocardless-go/pkg/gcclient"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// JSON formatting.
const defaultJSONIndent = "  "

// CreateClient builds a gocardless client from the effective configuration:
// flags first, then GC_* environment variables, then the config file.
func CreateClient() (gocardless.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoAccessTokenConfigured
	}

	config := &gocardless.Config{
		AccessToken: token,
		Environment: gocardless.Environment(viper.GetString("environment")),
		Endpoint:    viper.GetString("endpoint"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.New(logging.Config{
			Level:  logging.LevelDebug,
			Pretty: true,
			Output: os.Stderr,
		})
	}

	client, err := gcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderStructured writes data as JSON or YAML and reports whether the
// format was one of the two. Table rendering stays with the caller.
func renderStructured(data interface{}, format string) (bool, error) {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// formatAmount renders an amount in the smallest denomination as a decimal
// with its currency, e.g. 1050 GBP -> "10.50 GBP".
func formatAmount(amount int, currency gocardless.Currency) string {
	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, currency)
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format("2006-01-02 15:04:05")
}

// formatCursor renders a pagination cursor for the "more pages" hint.
func formatCursor(after *string) string {
	if after == nil {
		return ""
	}

	return *after
}

// listParamsFromFlags builds ListParams from the common list flags.
func listParamsFromFlags(limit int, after string) *gocardless.ListParams {
	params := gocardless.NewListParams()
	if limit > 0 {
		params.WithLimit(limit)
	}

	if after != "" {
		params.WithAfter(after)
	}

	return params
}

// printMorePagesHint tells the user how to continue a truncated listing.
func printMorePagesHint(after *string, allPages bool) {
	if allPages || after == nil {
		return
	}

	fmt.Printf("\nMore results available. Use --all to fetch every page, or --after %s to continue.\n", formatCursor(after))
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
