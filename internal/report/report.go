// Package report renders a footprint computation as CSV, JSON or a
// Markdown-flavoured text document. Figures are rounded to one decimal here
// and nowhere else.
package report

import (
	"math"
	"time"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Input is everything a report is built from.
type Input struct {
	Result      footprint.Result
	Comparison  footprint.Comparison
	Advice      *footprint.Advice
	GeneratedAt time.Time
}

// Report is the rounded, display-ready view of a computation.
type Report struct {
	GeneratedAt    time.Time       `json:"generatedAt"`
	Region         string          `json:"region"`
	EmissionFactor float64         `json:"emissionFactor"`
	FactorSource   string          `json:"factorSource"`
	Currency       string          `json:"currency"`
	Totals         Totals          `json:"totals"`
	Comparison     Comparison      `json:"comparison"`
	Devices        []DeviceRow     `json:"devices"`
	Categories     []CategoryRow   `json:"categories"`
	LifecycleKg    float64         `json:"lifecycleKg"`
	Equivalencies  []Equivalency   `json:"equivalencies,omitempty"`
	Excluded       []string        `json:"excluded,omitempty"`
	Suggestion     *SuggestionView `json:"suggestion,omitempty"`
}

// Totals are the aggregate annual figures.
type Totals struct {
	EnergyKWh    float64 `json:"energyKWh"`
	CO2Kg        float64 `json:"co2Kg"`
	RenewableKWh float64 `json:"renewableKWh"`
	NetEnergyKWh float64 `json:"netEnergyKWh"`
	NetCO2Kg     float64 `json:"netCO2Kg"`
	Cost         float64 `json:"cost"`
	NetCost      float64 `json:"netCost"`
	Savings      float64 `json:"savings"`
}

// Comparison is the benchmark comparison.
type Comparison struct {
	BenchmarkEnergyKWh float64 `json:"benchmarkEnergyKWh"`
	BenchmarkCO2Kg     float64 `json:"benchmarkCO2Kg"`
	EnergyDelta        float64 `json:"energyDelta"`
	CO2Delta           float64 `json:"co2Delta"`
}

// DeviceRow is one line of the per-device breakdown.
type DeviceRow struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	PowerWatts float64 `json:"powerWatts"`
	UsageHours float64 `json:"usageHoursPerDay"`
	EnergyKWh  float64 `json:"energyKWh"`
	CO2Kg      float64 `json:"co2Kg"`
	Cost       float64 `json:"cost"`
}

// CategoryRow is one category aggregate.
type CategoryRow struct {
	Category  string  `json:"category"`
	Devices   int     `json:"devices"`
	EnergyKWh float64 `json:"energyKWh"`
	CO2Kg     float64 `json:"co2Kg"`
}

// Equivalency is one everyday-terms comparison of annual CO2.
type Equivalency struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SuggestionView is the top-consumer saving proposal.
type SuggestionView struct {
	Device     string  `json:"device"`
	Reduction  float64 `json:"reduction"`
	SavedKWh   float64 `json:"savedKWh"`
	SavedCO2Kg float64 `json:"savedCO2Kg"`
}

// Build rounds and arranges in for rendering.
func Build(in Input) Report {
	res := in.Result
	r := Report{
		GeneratedAt:    in.GeneratedAt.UTC(),
		Region:         res.Region,
		EmissionFactor: res.EmissionFactor,
		FactorSource:   string(res.FactorSource),
		Currency:       res.Currency,
		Totals: Totals{
			EnergyKWh:    round1(res.TotalEnergyKWh),
			CO2Kg:        round1(res.TotalCO2Kg),
			RenewableKWh: round1(res.RenewableKWh),
			NetEnergyKWh: round1(res.NetEnergyKWh),
			NetCO2Kg:     round1(res.NetCO2Kg),
			Cost:         round2(res.TotalCost),
			NetCost:      round2(res.NetCost),
			Savings:      round2(res.Savings),
		},
		Comparison: Comparison{
			BenchmarkEnergyKWh: round1(in.Comparison.BenchmarkEnergy),
			BenchmarkCO2Kg:     round1(in.Comparison.BenchmarkCO2),
			EnergyDelta:        round1(in.Comparison.EnergyDelta),
			CO2Delta:           round1(in.Comparison.CO2Delta),
		},
		Devices:     make([]DeviceRow, 0, len(res.Devices)),
		Categories:  make([]CategoryRow, 0, len(res.Categories)),
		LifecycleKg: round1(res.Lifecycle.TotalKg()),
	}

	for _, d := range res.Devices {
		r.Devices = append(r.Devices, DeviceRow{
			Name:       d.Device.Name,
			Category:   d.Device.Category,
			PowerWatts: d.Device.PowerWatts,
			UsageHours: d.Device.UsageHoursPerDay,
			EnergyKWh:  round1(d.EnergyKWh),
			CO2Kg:      round1(d.CO2Kg),
			Cost:       round2(d.Cost),
		})
	}
	for _, c := range res.Categories {
		r.Categories = append(r.Categories, CategoryRow{
			Category:  c.Category,
			Devices:   c.DeviceCount,
			EnergyKWh: round1(c.EnergyKWh),
			CO2Kg:     round1(c.CO2Kg),
		})
	}
	for _, d := range res.Excluded {
		r.Excluded = append(r.Excluded, d.Name)
	}

	if eq, err := greenops.Calculate(res.NetCO2Kg); err == nil {
		for _, item := range eq.Items {
			r.Equivalencies = append(r.Equivalencies, Equivalency{Label: item.Label, Value: item.Formatted})
		}
	}

	if in.Advice != nil && in.Advice.Top != nil {
		top := in.Advice.Top
		r.Suggestion = &SuggestionView{
			Device:     top.Device.Name,
			Reduction:  top.Reduction,
			SavedKWh:   round1(top.SavedKWh),
			SavedCO2Kg: round1(top.SavedCO2Kg),
		}
	}
	return r
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
