package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/report"
)

// Report formats.
const (
	reportText = "text"
	reportCSV  = "csv"
	reportJSON = "json"
)

// newReportCmd creates the report command.
func newReportCmd() *cobra.Command {
	var format, file string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a footprint report",
		Long: `Writes a report of the current footprint. The text format is a Markdown
document with totals, comparison, breakdowns and a saving suggestion. The csv
format is the per-device breakdown. Figures are rounded to one decimal.`,
		Example: `  footprint report
  footprint report --format csv --file footprint.csv
  footprint report --format json --region UK`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var write func(io.Writer, report.Report) error
			switch strings.ToLower(format) {
			case reportText, "md", "markdown":
				write = report.WriteText
			case reportCSV:
				write = report.WriteCSV
			case reportJSON:
				write = report.WriteJSON
			default:
				return fmt.Errorf("unsupported report format %q: use text, csv or json", format)
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			devices, res, err := s.compute(cmd.Context())
			if err != nil {
				return err
			}
			advice := s.calc.Suggest(devices, res.Region)
			r := report.Build(report.Input{
				Result:      res,
				Comparison:  s.calc.Compare(res, res.Region),
				Advice:      &advice,
				GeneratedAt: s.now(),
			})
			return withOutputFile(cmd, file, func(w io.Writer) error { return write(w, r) })
		},
	}
	cmd.Flags().StringVar(&format, "format", reportText, "report format: text, csv or json")
	cmd.Flags().StringVar(&file, "file", "", "write to file instead of stdout")
	return cmd
}
