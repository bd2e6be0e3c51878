// Package cli implements the footprint command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationConfigOptional marks commands that still run when the config
// file is unreadable, falling back to defaults.
const annotationConfigOptional = "footprint/config-optional"

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calculate, presets, serve and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		configPath string
		logResult  *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Personal carbon footprint calculator",
		Long:          "footprint: Estimate annual household CO₂ emissions from electricity, gas, driving and flights",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		fmt.Sprintf("config file (default $%s or ~/.footprint/config.yaml)", config.EnvConfigPath))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError(err)
	})

	cmd.AddCommand(NewCalculateCmd(), NewPresetsCmd(), NewServeCmd(), newConfigCmd())

	return cmd
}

// loadConfig reads the configuration for cmd and stores it in the command
// context. Commands annotated with annotationConfigOptional fall back to
// defaults when the file is invalid.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if !configOptional(cmd) {
			return nil, inputError(fmt.Errorf("loading config: %w", err))
		}
		cmd.PrintErrf("Warning: ignoring unreadable config: %v\n", err)
		cfg = config.New()
		if path != "" {
			cfg.SetConfigPath(path)
		}
	}
	cmd.SetContext(config.ContextWithConfig(cmd.Context(), cfg))
	return cfg, nil
}

const rootCmdExample = `  # Calculate with the default household quantities
  footprint calculate

  # Calculate with your own usage on a low-carbon grid, in tonnes
  footprint calculate --electricity 4200 --car 8000 --preset low-carbon-grid --unit t

  # Use your own emission factors
  footprint calculate --preset custom --electricity-factor 0.5 --gas-factor 0.2 \
    --car-factor 0.15 --flight-factor 0.1

  # Export the per-category breakdown as CSV
  footprint calculate --export emissions.csv

  # Fill in the values interactively
  footprint calculate --interactive

  # Run the HTTP API
  footprint serve --addr :8080

  # Initialize configuration
  footprint config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationConfigOptional: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}

// configOptional reports whether cmd or one of its parents carries
// annotationConfigOptional.
func configOptional(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationConfigOptional]; ok {
			return true
		}
	}
	return false
}
