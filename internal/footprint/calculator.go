// Package footprint turns a device list into annual energy, cost and CO2
// figures for a region, compares them with the region's household benchmark,
// and evaluates single-device what-if substitutions.
//
// Every function in this package is pure: no I/O, no clock, no logging.
package footprint

import (
	"math"

	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/refdata"
)

// Calculator computes footprints against a set of reference tables.
type Calculator struct {
	tables *refdata.Tables
}

// NewCalculator returns a calculator reading the given tables. A nil tables
// argument selects the built-in defaults.
func NewCalculator(tables *refdata.Tables) *Calculator {
	if tables == nil {
		tables = refdata.Default()
	}
	return &Calculator{tables: tables}
}

// Tables returns the reference tables the calculator reads.
func (c *Calculator) Tables() *refdata.Tables {
	return c.tables
}

// Compute returns the annual footprint of devices under p. It never fails:
// unknown regions fall back to World and devices outside the power or usage
// bounds are reported in Result.Excluded instead of being counted.
func (c *Calculator) Compute(devices []device.Device, p Params) Result {
	region := c.tables.Region(p.Region)
	factor, source := effectiveFactor(region, p.LiveFactor)

	res := Result{
		Region:         region.Name,
		EmissionFactor: factor,
		FactorSource:   source,
		Price:          region.ElectricityPrice,
		Currency:       region.Currency,
		Devices:        make([]DeviceEnergy, 0, len(devices)),
		Categories:     []CategoryEnergy{},
	}

	categoryIndex := make(map[string]int)
	for _, d := range devices {
		if !d.Countable() {
			res.Excluded = append(res.Excluded, d)
			continue
		}

		kwh := d.AnnualKWh()
		co2 := kwh * factor
		res.Devices = append(res.Devices, DeviceEnergy{
			Device:    d,
			EnergyKWh: kwh,
			CO2Kg:     co2,
			Cost:      kwh * region.ElectricityPrice,
		})
		res.TotalEnergyKWh += kwh

		i, seen := categoryIndex[d.Category]
		if !seen {
			i = len(res.Categories)
			categoryIndex[d.Category] = i
			res.Categories = append(res.Categories, CategoryEnergy{Category: d.Category})
		}
		res.Categories[i].EnergyKWh += kwh
		res.Categories[i].CO2Kg += co2
		res.Categories[i].DeviceCount++

		if l, ok := c.tables.Lifecycle(d.ID); ok {
			res.Lifecycle.ManufacturingKg += l.ManufacturingKg
			res.Lifecycle.DisposalKg += l.DisposalKg
		}
	}

	renewable := p.RenewableKWh
	if math.IsNaN(renewable) || renewable < 0 {
		renewable = 0
	}
	res.RenewableKWh = renewable

	res.TotalCO2Kg = res.TotalEnergyKWh * factor
	res.NetEnergyKWh = math.Max(res.TotalEnergyKWh-renewable, 0)
	res.NetCO2Kg = res.NetEnergyKWh * factor

	res.TotalCost = res.TotalEnergyKWh * region.ElectricityPrice
	res.NetCost = res.NetEnergyKWh * region.ElectricityPrice
	res.Savings = res.TotalCost - res.NetCost

	return res
}

// Compare measures a result against the benchmark of region, falling back
// to World for unknown names.
func (c *Calculator) Compare(result Result, region string) Comparison {
	profile := c.tables.Region(region)
	return Comparison{
		Region:          profile.Name,
		BenchmarkEnergy: profile.Benchmark.EnergyKWh,
		BenchmarkCO2:    profile.Benchmark.CO2Kg,
		EnergyDelta:     result.TotalEnergyKWh - profile.Benchmark.EnergyKWh,
		CO2Delta:        result.TotalCO2Kg - profile.Benchmark.CO2Kg,
	}
}

func effectiveFactor(region refdata.RegionProfile, live float64) (float64, FactorSource) {
	if !math.IsNaN(live) && !math.IsInf(live, 0) && live > 0 {
		return live, FactorLive
	}
	return region.EmissionFactor, FactorStatic
}
