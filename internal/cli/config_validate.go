package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration, including the reference overlay file
when one is configured.`,
		Example: `  # Validate current configuration
  footprint config validate

  # Validate and show detailed information
  footprint config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Printf("Configuration is valid\n")

			if verbose {
				cmd.Println()
				cmd.Println("Configuration details:")
				cmd.Printf("  Config file: %s\n", cfg.Path())
				cmd.Printf("  Region: %s\n", cfg.Region)
				cmd.Printf("  Language: %s\n", cfg.Language)
				cmd.Printf("  Renewable offset: %g kWh\n", cfg.RenewableKWh)
				cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
				cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
				cmd.Printf("  Live intensity: %t (%s)\n", cfg.Live.Enabled, cfg.Live.Endpoint)
				cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
				if cfg.ReferenceFile != "" {
					cmd.Printf("  Reference overlay: %s\n", cfg.ReferenceFile)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}
