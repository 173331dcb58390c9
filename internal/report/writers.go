package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/greenops"
)

// CSVHeader is the column row of the per-device CSV report.
//
//nolint:gochecknoglobals // Fixed column layout.
var CSVHeader = []string{"Device", "Category", "Power (W)", "Usage (hrs/day)", "Annual Energy (kWh)"}

// WriteCSV writes the per-device breakdown.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, d := range r.Devices {
		row := []string{
			d.Name,
			d.Category,
			formatPlain(d.PowerWatts),
			formatPlain(d.UsageHours),
			strconv.FormatFloat(d.EnergyKWh, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteText writes a Markdown-flavoured document.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("# Household Energy Footprint Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Region: %s\n", r.Region)
	factor := fmt.Sprintf("%.3f kg CO2/kWh", r.EmissionFactor)
	if r.FactorSource == "live" {
		factor += " (live)"
	}
	fmt.Fprintf(&b, "Emission factor: %s\n\n", factor)

	b.WriteString("## Totals\n\n")
	fmt.Fprintf(&b, "- Annual energy: %s\n", greenops.FormatKWh(r.Totals.EnergyKWh))
	fmt.Fprintf(&b, "- Annual CO2: %s\n", greenops.FormatKg(r.Totals.CO2Kg))
	fmt.Fprintf(&b, "- Annual cost: %s\n", greenops.FormatMoney(r.Totals.Cost, r.Currency))
	if r.Totals.RenewableKWh > 0 {
		fmt.Fprintf(&b, "- Renewable offset: %s\n", greenops.FormatKWh(r.Totals.RenewableKWh))
		fmt.Fprintf(&b, "- Net energy: %s\n", greenops.FormatKWh(r.Totals.NetEnergyKWh))
		fmt.Fprintf(&b, "- Net CO2: %s\n", greenops.FormatKg(r.Totals.NetCO2Kg))
		fmt.Fprintf(&b, "- Net cost: %s (saving %s)\n",
			greenops.FormatMoney(r.Totals.NetCost, r.Currency),
			greenops.FormatMoney(r.Totals.Savings, r.Currency))
	}
	if r.LifecycleKg > 0 {
		fmt.Fprintf(&b, "- Embodied (one-time): %s\n", greenops.FormatKg(r.LifecycleKg))
	}

	b.WriteString("\n## Comparison with average household\n\n")
	fmt.Fprintf(&b, "- Benchmark energy: %s (%s)\n",
		greenops.FormatKWh(r.Comparison.BenchmarkEnergyKWh), signed(r.Comparison.EnergyDelta, "kWh"))
	fmt.Fprintf(&b, "- Benchmark CO2: %s (%s)\n",
		greenops.FormatKg(r.Comparison.BenchmarkCO2Kg), signed(r.Comparison.CO2Delta, "kg"))

	b.WriteString("\n## Devices\n\n")
	if len(r.Devices) == 0 {
		b.WriteString("No devices.\n")
	} else {
		b.WriteString("| Device | Category | Power (W) | Usage (hrs/day) | Energy (kWh) | CO2 (kg) |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|\n")
		for _, d := range r.Devices {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %.1f | %.1f |\n",
				escapeCell(d.Name), escapeCell(d.Category),
				formatPlain(d.PowerWatts), formatPlain(d.UsageHours), d.EnergyKWh, d.CO2Kg)
		}
	}
	if len(r.Excluded) > 0 {
		fmt.Fprintf(&b, "\nExcluded (invalid power or usage): %s\n", strings.Join(r.Excluded, ", "))
	}

	if len(r.Equivalencies) > 0 {
		b.WriteString("\n## Equivalent to\n\n")
		for _, e := range r.Equivalencies {
			fmt.Fprintf(&b, "- ~%s %s\n", e.Value, e.Label)
		}
	}

	if s := r.Suggestion; s != nil {
		b.WriteString("\n## Suggestion\n\n")
		fmt.Fprintf(&b, "Cutting %s usage by %.0f%% saves %s and %s per year.\n",
			s.Device, s.Reduction*100, greenops.FormatKWh(s.SavedKWh), greenops.FormatKg(s.SavedCO2Kg))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func signed(v float64, unit string) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f %s above", v, unit)
	}
	if v < 0 {
		return fmt.Sprintf("%.1f %s below", v, unit)
	}
	return "on par"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
