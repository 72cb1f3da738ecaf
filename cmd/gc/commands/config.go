package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gocardless/gocardless-go/internal/constants"
)

// Config represents the CLI configuration persisted to ~/.gc/config.yml.
type Config struct {
	Token       string `json:"token,omitempty"       yaml:"token,omitempty"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	Output      string `json:"output,omitempty"      yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage gc CLI configuration including the access token and environment",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the access token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.Token != "" {
				display.Token = constants.MaskedSecret
			}

			handled, err := renderStructured(display, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")
			_ = table.Append("token", valueOrNA(display.Token))
			_ = table.Append("environment", valueOrNA(display.Environment))
			_ = table.Append("endpoint", valueOrNA(display.Endpoint))
			_ = table.Append("output", valueOrNA(display.Output))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: token, environment, endpoint, output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if err := validateConfigValue(key, value); err != nil {
				return err
			}

			viper.Set(key, value)

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !isKnownConfigKey(key) {
				return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store an access token",
		Long:  "Prompt for an access token without echoing it and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Access token: ")

			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}

			viper.Set("token", string(tokenBytes))

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("Token saved")

			return nil
		},
	}
}

func isKnownConfigKey(key string) bool {
	switch key {
	case "token", "environment", "endpoint", "output":
		return true
	default:
		return false
	}
}

func validateConfigValue(key, value string) error {
	switch key {
	case "environment":
		if value != "live" && value != "sandbox" {
			return fmt.Errorf("%w: %q", constants.ErrUnknownEnvironment, value)
		}
	case "output":
		if value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, value)
		}
	case "token", "endpoint":
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		Token:       viper.GetString("token"),
		Environment: viper.GetString("environment"),
		Endpoint:    viper.GetString("endpoint"),
		Output:      viper.GetString("output"),
	}
}

func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".gc")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(loadConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
