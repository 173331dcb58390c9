// Package cli implements the footprint command tree.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/i18n"
	"github.com/rshade/footprint/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Global flag names.
const (
	flagDebug     = "debug"
	flagHome      = "home"
	flagRegion    = "region"
	flagRenewable = "renewable"
	flagLive      = "live"
	flagOutput    = "output"
	flagLang      = "lang"
)

// RootCommand is the footprint command tree. Its Execute and ExecuteContext
// close the log file opened for the run, whether or not the command failed.
type RootCommand struct {
	*cobra.Command

	logResult *logging.LogPathResult
}

// Execute runs the command tree with a background context.
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the command tree with ctx. When logging to a file, a
// failed command is recorded there before the file is closed.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.Command.ExecuteContext(ctx)
	if r.logResult == nil {
		return err
	}
	if err != nil && r.logResult.UsingFile {
		r.logResult.Logger.Error().Str("component", "cli").Err(err).Msg("command failed")
	}
	if closeErr := r.logResult.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	r.logResult = nil
	return err
}

// NewRootCmd creates the root command for the footprint CLI.
func NewRootCmd(ver string) *RootCommand {
	root := &RootCommand{}

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Household device energy, cost and CO2 footprint calculator",
		Long: `footprint estimates the annual energy use, electricity cost and CO2
emissions of your household devices, compares them with the average household
of your region, and previews what changes to a single device would save.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if home, _ := cmd.Flags().GetString(flagHome); home != "" {
				config.SetConfigDir(home)
			}
			root.logResult = setupLogging(cmd)
			return nil
		},
	}
	root.Command = cmd

	pf := cmd.PersistentFlags()
	pf.Bool(flagDebug, false, "enable debug logging")
	pf.String(flagHome, "", "footprint home directory (default $FOOTPRINT_HOME or ~/.footprint)")
	pf.String(flagRegion, "", "region to compute for (default from config)")
	pf.Float64(flagRenewable, 0, "annual renewable generation offset in kWh (default from config)")
	pf.Bool(flagLive, false, "use the live grid carbon intensity when available")
	pf.StringP(flagOutput, "o", "", "output format: table or json (default from config)")
	pf.String(flagLang, "", "output language: "+i18n.Names()+" (default from config or $FOOTPRINT_LANG)")

	cmd.AddCommand(
		newDevicesCmd(),
		newResultsCmd(),
		newCompareCmd(),
		newWhatIfCmd(),
		newSuggestCmd(),
		newHistoryCmd(),
		newReportCmd(),
		newRegionsCmd(),
		newConfigCmd(),
	)
	return root
}

const rootCmdExample = `  # List your devices (seeded from the built-in catalog)
  footprint devices list

  # Add a device
  footprint devices add --name "Gaming PC" --category Computing --power 350 --hours 3

  # Annual totals for a region, offset by rooftop solar
  footprint results --region EU --renewable 800

  # Preview swapping the desktop for a laptop
  footprint whatif desktop --type laptop

  # Export a report
  footprint report --format csv --file footprint.csv

  # Results in Spanish
  footprint results --lang es`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
