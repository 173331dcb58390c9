package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/cli/pagination"
	"github.com/rshade/footprint/internal/device"
)

// listedDevice is one row of "devices list".
type listedDevice struct {
	Position int `json:"position"`
	device.Device
	AnnualKWh float64 `json:"annualKWh"`
}

//nolint:gochecknoglobals // Fixed sort fields for devices list.
var deviceSorter = pagination.NewSorter(map[string]pagination.Less[listedDevice]{
	"name":     func(a, b listedDevice) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"category": func(a, b listedDevice) bool { return a.Category < b.Category },
	"power":    func(a, b listedDevice) bool { return a.PowerWatts < b.PowerWatts },
	"hours":    func(a, b listedDevice) bool { return a.UsageHoursPerDay < b.UsageHoursPerDay },
	"energy":   func(a, b listedDevice) bool { return a.AnnualKWh < b.AnnualKWh },
})

// newDevicesCmd creates the devices command group.
func newDevicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "devices",
		Aliases: []string{"device"},
		Short:   "Manage the household device list",
	}
	cmd.AddCommand(
		newDevicesListCmd(), newDevicesAddCmd(), newDevicesEditCmd(), newDevicesRemoveCmd(),
		newDevicesResetCmd(), newDevicesImportCmd(), newDevicesExportCmd(),
	)
	return cmd
}

func newDevicesListCmd() *cobra.Command {
	var params pagination.Params
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices",
		Example: `  footprint devices list
  footprint devices list --sort energy --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}

			rows := make([]listedDevice, len(devices))
			for i, d := range devices {
				rows[i] = listedDevice{Position: i + 1, Device: d, AnnualKWh: d.AnnualKWh()}
			}
			ordered, err := deviceSorter.Sort(rows, params.Sort)
			if err != nil {
				return err
			}
			ordered = pagination.Apply(ordered, params)

			if s.format == "json" {
				return writeJSON(cmd.OutOrStdout(), ordered)
			}
			if len(ordered) == 0 {
				cmd.Println(s.T("No devices."))
				return nil
			}
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, s.T("#\tID\tNAME\tCATEGORY\tPOWER (W)\tHOURS/DAY\tKWH/YEAR"))
			for _, r := range ordered {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Position, r.ID, r.Name, r.Category,
					plain(r.PowerWatts), plain(r.UsageHoursPerDay), s.num(r.AnnualKWh))
			}
			return tw.Flush()
		},
	}
	addPaginationFlags(cmd, &params, "sort by name, category, power, hours or energy, e.g. energy:desc")
	return cmd
}

// draftFlags registers the device field flags and builds a Draft from those set.
type draftFlags struct {
	name, category string
	power, hours   float64
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "device name")
	cmd.Flags().StringVar(&f.category, "category", "",
		"category: Computing, Appliance, Lighting, Entertainment, Networking, Mobile or any other label")
	cmd.Flags().Float64Var(&f.power, "power", 0, "power draw in watts")
	cmd.Flags().Float64Var(&f.hours, "hours", 0, "average usage in hours per day (0-24)")
}

func (f *draftFlags) draft(cmd *cobra.Command) device.Draft {
	var d device.Draft
	if cmd.Flags().Changed("name") {
		d.Name = &f.name
	}
	if cmd.Flags().Changed("category") {
		d.Category = &f.category
	}
	if cmd.Flags().Changed("power") {
		d.PowerWatts = &f.power
	}
	if cmd.Flags().Changed("hours") {
		d.UsageHoursPerDay = &f.hours
	}
	return d
}

func newDevicesAddCmd() *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a device",
		Example: `  footprint devices add --name "Gaming PC" --category Computing --power 350 --hours 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}

			draft := flags.draft(cmd)
			if missing := draft.Missing(); len(missing) > 0 {
				return fmt.Errorf("%w: missing %s", device.ErrInvalidInput, strings.Join(missing, ", "))
			}
			next, added, err := device.Add(devices, draft, s.now())
			if err != nil {
				return err
			}
			if err := s.devices.Save(next); err != nil {
				return err
			}
			logger.Info().Ctx(cmd.Context()).Str("operation", "device_add").Str("id", added.ID).Msg("device added")
			cmd.Println(s.T("Added %s (%s), %s kWh/year", added.Name, added.ID, s.num(added.AnnualKWh())))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDevicesEditCmd() *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "edit <position|id>",
		Short: "Edit a device",
		Example: `  footprint devices edit 2 --hours 4
  footprint devices edit laptop --power 45`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}
			index, err := resolveDevice(devices, args[0])
			if err != nil {
				return err
			}
			next, err := device.Update(devices, index, flags.draft(cmd))
			if err != nil {
				return err
			}
			if err := s.devices.Save(next); err != nil {
				return err
			}
			cmd.Println(s.T("Updated %s", next[index].Name))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDevicesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position|id>",
		Aliases: []string{"rm"},
		Short:   "Remove a device",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, err := s.loadDevices()
			if err != nil {
				return err
			}
			index, err := resolveDevice(devices, args[0])
			if err != nil {
				return err
			}
			removed := devices[index]
			next, err := device.Remove(devices, index)
			if err != nil {
				return err
			}
			if err := s.devices.Save(next); err != nil {
				return err
			}
			cmd.Println(s.T("Removed %s", removed.Name))
			return nil
		},
	}
}

func newDevicesResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the device list with the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if !yes {
				result := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
					"This replaces your device list with the default catalog.")
				if !result.Accepted {
					if !result.Interactive {
						return errors.New("refusing to reset without confirmation, use --yes")
					}
					cmd.Println(s.T("Reset cancelled."))
					return nil
				}
			}
			next := device.Reset(s.tables.Catalog())
			if err := s.devices.Save(next); err != nil {
				return err
			}
			cmd.Println(s.T("Device list reset to %d catalog devices", len(next)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newDevicesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the device list with a JSON export",
		Long: `Reads a JSON array of devices, as written by "devices export --format json",
and replaces the current list. The current list is kept if the file is malformed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("opening import file: %w", openErr)
				}
				defer f.Close()
				r = f
			}

			imported, err := device.DecodeJSON(r, s.now())
			if err != nil {
				return err
			}
			if err := s.devices.Save(imported); err != nil {
				return err
			}
			cmd.Println(s.T("Imported %d devices", len(imported)))
			return nil
		},
	}
}

func newDevicesExportCmd() *cobra.Command {
	var format, file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the device list as JSON or CSV",
		Example: `  footprint devices export > devices.json
  footprint devices export --format csv --file devices.csv`,
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

			return withOutputFile(cmd, file, func(w io.Writer) error {
				switch strings.ToLower(format) {
				case "json":
					return device.EncodeJSON(w, devices)
				case "csv":
					return device.EncodeCSV(w, devices)
				default:
					return fmt.Errorf("unsupported export format %q: use json or csv", format)
				}
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "export format: json or csv")
	cmd.Flags().StringVar(&file, "file", "", "write to file instead of stdout")
	return cmd
}

// withOutputFile runs write against file, or stdout when file is empty.
// The file is written atomically.
func withOutputFile(cmd *cobra.Command, file string, write func(io.Writer) error) error {
	if file == "" {
		return write(cmd.OutOrStdout())
	}
	tmp := file + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", file, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", file, err)
	}
	if err := os.Rename(tmp, file); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", file, err)
	}
	cmd.PrintErrf("Wrote %s\n", file)
	return nil
}

func addPaginationFlags(cmd *cobra.Command, p *pagination.Params, sortHelp string) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "maximum number of rows (0 = all)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "rows to skip")
	cmd.Flags().StringVar(&p.Sort, "sort", "", sortHelp)
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
