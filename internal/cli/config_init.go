package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/refdata"
)

// NewConfigInitCmd creates the config init command for writing a default config file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		region string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $FOOTPRINT_HOME/config.yaml (default ~/.footprint/config.yaml) with
default values.`,
		Example: `  # Create configuration
  footprint config init

  # Create configuration with a default region, overwriting existing
  footprint config init --default-region EU --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if err := config.EnsureConfigDir(); err != nil {
				return fmt.Errorf("creating footprint home: %w", err)
			}
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			cfg.SetPath(filepath.Join(dir, config.ConfigFileName))

			if !force {
				if _, statErr := os.Stat(cfg.Path()); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.Path(), statErr)
				}
			}

			if region != "" {
				profile, found := refdata.Default().LookupRegion(region)
				if !found {
					return fmt.Errorf("unknown region %q", region)
				}
				cfg.Region = profile.Name
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&region, "default-region", "", "default region to store in the file")
	return cmd
}
