package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/cli/pagination"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/tui"
)

// regionComparison is one row of "compare --all-regions".
type regionComparison struct {
	Region     string               `json:"region"`
	EnergyKWh  float64              `json:"energyKWh"`
	CO2Kg      float64              `json:"co2Kg"`
	Cost       float64              `json:"cost"`
	Currency   string               `json:"currency"`
	Comparison footprint.Comparison `json:"comparison"`
}

//nolint:gochecknoglobals // Fixed sort fields for the region comparison.
var regionSorter = pagination.NewSorter(map[string]pagination.Less[regionComparison]{
	"region": func(a, b regionComparison) bool { return a.Region < b.Region },
	"co2":    func(a, b regionComparison) bool { return a.CO2Kg < b.CO2Kg },
	"delta":  func(a, b regionComparison) bool { return a.Comparison.CO2Delta < b.Comparison.CO2Delta },
	"cost":   func(a, b regionComparison) bool { return a.Cost < b.Cost },
})

// newCompareCmd creates the compare command.
func newCompareCmd() *cobra.Command {
	var (
		all    bool
		params pagination.Params
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare your footprint with the average household",
		Long: `Compares annual energy and CO2 with the average household of the selected
region. Positive deltas mean you are above the benchmark. With --all-regions the
same device list is computed for every region.`,
		Example: `  footprint compare --region India
  footprint compare --all-regions --sort co2:asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if all {
				return runCompareAll(cmd, s, params)
			}

			_, res, err := s.compute(cmd.Context())
			if err != nil {
				return err
			}
			cmp := s.calc.Compare(res, res.Region)
			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}

			out := cmd.OutOrStdout()
			styled(out)
			fmt.Fprintln(out, s.T("%s average household: %s kWh, %s kg CO2",
				cmp.Region, s.num(cmp.BenchmarkEnergy), s.num(cmp.BenchmarkCO2)))
			fmt.Fprintln(out, s.T("You: %s kWh, %s kg CO2", s.num(res.TotalEnergyKWh), s.num(res.TotalCO2Kg)))
			fmt.Fprintln(out, s.T("Difference: %s  %s",
				tui.RenderDelta(s.printer.Formatter, cmp.EnergyDelta, "kWh"),
				tui.RenderDelta(s.printer.Formatter, cmp.CO2Delta, "kg CO2")))
			if cmp.AboveBenchmark() {
				fmt.Fprintln(out, s.T("You are above the regional average. Try 'footprint suggest'."))
			} else {
				fmt.Fprintln(out, s.T("You are at or below the regional average."))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all-regions", false, "compute the device list for every region")
	addPaginationFlags(cmd, &params, "with --all-regions, sort by region, co2, delta or cost")
	return cmd
}

func runCompareAll(cmd *cobra.Command, s *session, params pagination.Params) error {
	devices, err := s.loadDevices()
	if err != nil {
		return err
	}

	names := s.tables.RegionNames()
	rows := make([]regionComparison, 0, len(names))
	for _, name := range names {
		res := s.calc.Compute(devices, footprint.Params{Region: name, RenewableKWh: s.renewable})
		rows = append(rows, regionComparison{
			Region:     res.Region,
			EnergyKWh:  res.TotalEnergyKWh,
			CO2Kg:      res.TotalCO2Kg,
			Cost:       res.TotalCost,
			Currency:   res.Currency,
			Comparison: s.calc.Compare(res, name),
		})
	}
	rows, err = regionSorter.Sort(rows, params.Sort)
	if err != nil {
		return err
	}
	rows = pagination.Apply(rows, params)

	if s.format == "json" {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	tw := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(tw, s.T("REGION\tKWH/YEAR\tCO2 (KG)\tCOST\tBENCHMARK CO2\tDELTA CO2"))
	for _, r := range rows {
		delta := s.num(r.Comparison.CO2Delta)
		if r.Comparison.CO2Delta >= 0 {
			delta = "+" + delta
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\t%s\t%s\n", r.Region, s.num(r.EnergyKWh), s.num(r.CO2Kg),
			s.num(r.Cost), r.Currency, s.num(r.Comparison.BenchmarkCO2), delta)
	}
	return tw.Flush()
}
