package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/history"
	"github.com/rshade/footprint/internal/tui"
)

// newResultsCmd creates the results command: annual totals for the device list.
func newResultsCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show annual energy, CO2 and cost for your devices",
		Example: `  footprint results
  footprint results --region Brazil --renewable 500
  footprint results --save -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			devices, res, err := s.compute(ctx)
			if err != nil {
				return err
			}
			cmp := s.calc.Compare(res, res.Region)

			if save {
				entry := history.NewEntry(res, devices, s.now())
				if _, err := s.history.Record(ctx, entry); err != nil {
					return fmt.Errorf("saving history: %w", err)
				}
			}

			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), struct {
					footprint.Result
					Comparison footprint.Comparison `json:"comparison"`
				}{res, cmp})
			}
			renderResults(cmd, s, res, cmp)
			if save {
				cmd.Println(s.T("Saved to history."))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "record this result in the history log")
	return cmd
}

func renderResults(cmd *cobra.Command, s *session, res footprint.Result, cmp footprint.Comparison) {
	out := cmd.OutOrStdout()
	styled(out)
	fmt.Fprintln(out, tui.RenderSummary(s.printer, res, cmp))
	fmt.Fprintln(out)

	tw := newTabWriter(out)
	fmt.Fprintln(tw, s.T("DEVICE\tCATEGORY\tKWH/YEAR\tCO2 (KG)\tCOST"))
	for _, d := range res.Devices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Device.Name, d.Device.Category,
			s.num(d.EnergyKWh), s.num(d.CO2Kg), s.printer.Money(d.Cost, res.Currency))
	}
	_ = tw.Flush()

	if len(res.Categories) > 0 {
		fmt.Fprintln(out)
		tw = newTabWriter(out)
		fmt.Fprintln(tw, s.T("CATEGORY\tDEVICES\tKWH/YEAR\tCO2 (KG)"))
		for _, c := range res.Categories {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.Category, c.DeviceCount, s.num(c.EnergyKWh), s.num(c.CO2Kg))
		}
		_ = tw.Flush()
	}

	if eq, err := greenops.Calculate(res.NetCO2Kg); err == nil && !eq.IsEmpty() {
		fmt.Fprintf(out, "\n%s\n", eq.Summary)
	}
}
