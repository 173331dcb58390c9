package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSuggestCmd creates the suggest command.
func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest where to save energy",
		Long: `Names the device with the highest daily consumption and what cutting its
usage by 20% would save, followed by tips for each category you own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}
			region := s.tables.Region(s.region)
			advice := s.calc.Suggest(devices, region.Name)

			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), advice)
			}

			out := cmd.OutOrStdout()
			if top := advice.Top; top != nil {
				fmt.Fprintln(out, s.T("Your biggest consumer is %s (%s kWh/year).",
					top.Device.Name, s.num(top.Device.AnnualKWh())))
				fmt.Fprintln(out, s.T("Using it %.0f%% less would save %s, %s and %s a year.",
					top.Reduction*100, s.printer.KWh(top.SavedKWh), s.printer.Kg(top.SavedCO2Kg),
					s.printer.Money(top.SavedCost, region.Currency)))
			} else {
				fmt.Fprintln(out, s.T("No devices with usage to analyse."))
			}

			for _, ct := range advice.Tips {
				fmt.Fprintf(out, "\n%s:\n", ct.Category)
				for _, tip := range ct.Tips {
					fmt.Fprintf(out, "  - %s\n", tip)
				}
			}
			return nil
		},
	}
}
