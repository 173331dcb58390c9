package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/tui"
)

// newWhatIfCmd creates the whatif command: preview replacing one device.
func newWhatIfCmd() *cobra.Command {
	var (
		catalogID   string
		hours       float64
		power       float64
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "whatif [position|id]",
		Short: "Preview the effect of changing one device",
		Long: `Computes the footprint with one device replaced and shows the change against
the current list. The device list itself is not modified.

--type swaps the device for a catalog entry, keeping its usage hours.
--hours and --power override usage and draw of the hypothetical device.`,
		Example: `  footprint whatif desktop --type laptop
  footprint whatif 3 --hours 2
  footprint whatif --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}
			params := s.params(cmd.Context())

			if interactive {
				if !tui.IsTTY() {
					return errors.New("--interactive requires a terminal")
				}
				model := tui.NewWhatIfModel(s.calc, devices, params)
				if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
					return fmt.Errorf("running what-if view: %w", err)
				}
				if sc := model.Scenario(); sc != nil {
					styled(cmd.OutOrStdout())
					cmd.Println(tui.RenderScenario(*sc))
				}
				return nil
			}

			if len(args) == 0 {
				return errors.New("a device position or id is required unless --interactive is set")
			}
			index, err := resolveDevice(devices, args[0])
			if err != nil {
				return err
			}

			hypo := devices[index]
			if catalogID != "" {
				if hypo, err = s.calc.SwapForCatalog(hypo, catalogID); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("hours") {
				hypo.UsageHoursPerDay = hours
			}
			if cmd.Flags().Changed("power") {
				hypo.PowerWatts = power
			}
			if hypo == devices[index] {
				return errors.New("nothing to change: set --type, --hours or --power")
			}

			sc, err := s.calc.EvaluateScenario(devices, index, hypo, params)
			if err != nil {
				return err
			}
			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), sc)
			}
			styled(cmd.OutOrStdout())
			cmd.Println(tui.RenderScenario(sc))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogID, "type", "", "catalog device id to swap to, e.g. laptop or light_led")
	cmd.Flags().Float64Var(&hours, "hours", 0,
		fmt.Sprintf("usage hours per day of the hypothetical device (0-%g)", device.MaxUsageHoursPerDay))
	cmd.Flags().Float64Var(&power, "power", 0, "power draw in watts of the hypothetical device")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "explore changes in an interactive view")
	return cmd
}
