package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/refdata"
)

// regionRow is one line of the regions listing.
type regionRow struct {
	refdata.RegionProfile
	LiveFactor float64 `json:"liveFactor,omitempty"`
}

// newRegionsCmd creates the regions command.
func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List reference regions",
		Long: `Lists the regions with their emission factor, electricity price and household
benchmark. With --live the current grid intensity is fetched for every region
that has a grid zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			names := s.tables.RegionNames()
			rows := make([]regionRow, len(names))
			zones := make([]string, 0, len(names))
			for i, name := range names {
				rows[i].RegionProfile = s.tables.Region(name)
				if z := rows[i].GridZone; z != "" {
					zones = append(zones, z)
				}
			}
			if s.grid != nil {
				live := s.grid.FetchMany(cmd.Context(), zones)
				for i := range rows {
					rows[i].LiveFactor = live[rows[i].GridZone]
				}
				s.sweepCache(cmd.Context())
			}

			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			header := s.T("REGION\tKG CO2/KWH\tPRICE/KWH\tBENCHMARK KWH\tBENCHMARK CO2 (KG)")
			if s.grid != nil {
				header += "\t" + s.T("LIVE KG CO2/KWH")
			}
			fmt.Fprintln(tw, header)
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s", r.Name, s.printer.Float(r.EmissionFactor, 3),
					s.printer.Money(r.ElectricityPrice, r.Currency), s.num(r.Benchmark.EnergyKWh), s.num(r.Benchmark.CO2Kg))
				if s.grid != nil {
					live := "-"
					if r.LiveFactor > 0 {
						live = s.printer.Float(r.LiveFactor, 3)
					}
					fmt.Fprintf(tw, "\t%s", live)
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
}
