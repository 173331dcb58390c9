package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/i18n"
)

// deltaEpsilon hides floating-point noise in deltas.
const deltaEpsilon = 0.05

//nolint:gochecknoglobals // Formatter for the interactive views, which are English only.
var english = greenops.NewFormatter(language.English)

// RenderDelta renders a signed change with a directional arrow, formatted by f.
// Increases are drawn in the warning colour, decreases in the OK colour.
func RenderDelta(f greenops.Formatter, delta float64, unit string) string {
	var icon, sign string
	var color lipgloss.Color

	switch {
	case delta > deltaEpsilon:
		icon, sign, color = IconArrowUp, "+", ColorWarning
	case delta < -deltaEpsilon:
		icon, sign, color = IconArrowDown, "-", ColorOK
	default:
		icon, color = IconArrowRight, ColorMuted
	}

	text := fmt.Sprintf("%s%s %s %s", sign, f.Float(math.Abs(delta), 1), unit, icon)
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
}

// RenderSummary renders the headline figures of a computation and its
// benchmark comparison in p's language.
func RenderSummary(p *i18n.Printer, res footprint.Result, cmp footprint.Comparison) string {
	var sb strings.Builder

	title := p.T("Footprint for %s", res.Region)
	if res.FactorSource == footprint.FactorLive {
		title += " " + LiveStyle.Render(IconLive+" "+p.T("live"))
	}
	sb.WriteString(HeaderStyle.Render(title))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-22s", p.T(label))))
		sb.WriteString(ValueStyle.Render(value))
		sb.WriteString("\n")
	}
	row("Annual energy", p.KWh(res.TotalEnergyKWh))
	row("Annual CO2", p.Kg(res.TotalCO2Kg))
	row("Annual cost", p.Money(res.TotalCost, res.Currency))
	row("Emission factor", p.Float(res.EmissionFactor, 3)+" kg/kWh")
	if res.RenewableKWh > 0 {
		row("Net energy", p.KWh(res.NetEnergyKWh))
		row("Net CO2", p.Kg(res.NetCO2Kg))
		row("Renewable savings", p.Money(res.Savings, res.Currency))
	}
	if total := res.Lifecycle.TotalKg(); total > 0 {
		row("Embodied (one-time)", p.Kg(total))
	}

	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-22s", p.T("vs. average household"))))
	sb.WriteString(RenderDelta(p.Formatter, cmp.EnergyDelta, "kWh"))
	sb.WriteString("  ")
	sb.WriteString(RenderDelta(p.Formatter, cmp.CO2Delta, "kg CO2"))
	sb.WriteString("\n")

	if len(res.Excluded) > 0 {
		names := make([]string, len(res.Excluded))
		for i, d := range res.Excluded {
			names[i] = d.Name
		}
		sb.WriteString(ErrorStyle.Render(p.T("Excluded (invalid power or usage): ") + strings.Join(names, ", ")))
		sb.WriteString("\n")
	}

	return BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderScenario renders a what-if comparison.
func RenderScenario(sc footprint.Scenario) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("What-if"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s  %s (%gW, %gh/day)\n", LabelStyle.Render("from"),
		sc.Original.Name, sc.Original.PowerWatts, sc.Original.UsageHoursPerDay)
	fmt.Fprintf(&sb, "%s    %s (%gW, %gh/day)\n", LabelStyle.Render("to"),
		sc.Hypothetical.Name, sc.Hypothetical.PowerWatts, sc.Hypothetical.UsageHoursPerDay)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s → %s  %s\n", LabelStyle.Render("energy"),
		english.KWh(sc.Baseline.TotalEnergyKWh), english.KWh(sc.Result.TotalEnergyKWh),
		RenderDelta(english, sc.EnergyDelta, "kWh"))
	fmt.Fprintf(&sb, "%s    %s → %s  %s\n", LabelStyle.Render("CO2"),
		english.Kg(sc.Baseline.TotalCO2Kg), english.Kg(sc.Result.TotalCO2Kg),
		RenderDelta(english, sc.CO2Delta, "kg"))
	fmt.Fprintf(&sb, "%s   %s → %s  %s", LabelStyle.Render("cost"),
		english.Money(sc.Baseline.TotalCost, sc.Baseline.Currency),
		english.Money(sc.Result.TotalCost, sc.Result.Currency),
		RenderDelta(english, sc.CostDelta, sc.Result.Currency))
	return BoxStyle.Render(sb.String())
}
