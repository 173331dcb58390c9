package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/cli/pagination"
	"github.com/rshade/footprint/internal/history"
)

//nolint:gochecknoglobals // Fixed sort fields for history list.
var historySorter = pagination.NewSorter(map[string]pagination.Less[history.Entry]{
	"date":   func(a, b history.Entry) bool { return a.Date.Before(b.Date) },
	"energy": func(a, b history.Entry) bool { return a.EnergyKWh < b.EnergyKWh },
	"co2":    func(a, b history.Entry) bool { return a.CO2Kg < b.CO2Kg },
	"region": func(a, b history.Entry) bool { return a.Region < b.Region },
})

// newHistoryCmd creates the history command group.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Saved footprint snapshots",
		Long: fmt.Sprintf(`Lists and records footprint snapshots. The most recent %d are kept,
newest first.`, history.Capacity),
	}
	cmd.AddCommand(newHistoryListCmd(), newHistorySaveCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var params pagination.Params
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		Example: `  footprint history list
  footprint history list --sort co2 --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			entries, err := s.history.Load(cmd.Context())
			if err != nil {
				return err
			}
			entries, err = historySorter.Sort(entries, params.Sort)
			if err != nil {
				return err
			}
			entries = pagination.Apply(entries, params)

			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				cmd.Println(s.T("No history yet. Record one with 'footprint history save'."))
				return nil
			}
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, s.T("DATE\tREGION\tKWH\tCO2 (KG)\tNET CO2 (KG)\tDEVICES"))
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Date.Format(time.DateOnly), e.Region,
					s.num(e.EnergyKWh), s.num(e.CO2Kg), s.num(e.NetCO2Kg), e.Devices)
			}
			return tw.Flush()
		},
	}
	addPaginationFlags(cmd, &params, "sort by date, energy, co2 or region")
	return cmd
}

func newHistorySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Record the current footprint",
		Args:  cobra.NoArgs,
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
			entries, err := s.history.Record(ctx, history.NewEntry(res, devices, s.now()))
			if err != nil {
				return err
			}
			cmd.Println(s.T("Saved %s kWh, %s kg CO2 for %s (%d of %d snapshots)",
				s.num(res.TotalEnergyKWh), s.num(res.TotalCO2Kg), res.Region, len(entries), history.Capacity))
			return nil
		},
	}
}
