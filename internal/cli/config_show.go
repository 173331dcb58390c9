package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/config"
)

// redacted replaces secrets in config show output.
const redacted = "********"

// NewConfigShowCmd creates the config show command for printing the effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Prints the configuration after defaults, config file and FOOTPRINT_*
environment variables are applied. The live API token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *config.GetGlobalConfig()
			if cfg.Live.Token != "" {
				cfg.Live.Token = redacted
			}

			if format, _ := cmd.Flags().GetString(flagOutput); format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), cfg)
			}
			cmd.Printf("# %s\n", cfg.Path())
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(&cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
