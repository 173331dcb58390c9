package footprint

import "github.com/rshade/footprint/internal/device"

// FactorSource records where the effective emission factor came from.
type FactorSource string

const (
	// FactorStatic is the region's reference emission factor.
	FactorStatic FactorSource = "static"
	// FactorLive is a factor supplied by a live carbon-intensity lookup.
	FactorLive FactorSource = "live"
)

// Params are the inputs of one computation besides the device list.
type Params struct {
	// Region names the reference region. Unknown names resolve to World.
	Region string
	// RenewableKWh is the annual renewable generation offset. Negative is treated as 0.
	RenewableKWh float64
	// LiveFactor overrides the region emission factor when finite and > 0.
	LiveFactor float64
}

// DeviceEnergy is one device's annual figures.
type DeviceEnergy struct {
	Device    device.Device `json:"device"`
	EnergyKWh float64       `json:"energyKWh"`
	CO2Kg     float64       `json:"co2Kg"`
	Cost      float64       `json:"cost"`
}

// CategoryEnergy aggregates the devices sharing a category.
type CategoryEnergy struct {
	Category    string  `json:"category"`
	EnergyKWh   float64 `json:"energyKWh"`
	CO2Kg       float64 `json:"co2Kg"`
	DeviceCount int     `json:"deviceCount"`
}

// LifecycleTotals sums the one-time embodied emissions of the devices whose id
// appears in the lifecycle table.
type LifecycleTotals struct {
	ManufacturingKg float64 `json:"manufacturingKg"`
	DisposalKg      float64 `json:"disposalKg"`
}

// TotalKg returns manufacturing plus disposal.
func (l LifecycleTotals) TotalKg() float64 {
	return l.ManufacturingKg + l.DisposalKg
}

// Result is the output of Calculator.Compute. Values are unrounded.
type Result struct {
	// Region is the resolved region name; unknown inputs appear as World.
	Region         string       `json:"region"`
	EmissionFactor float64      `json:"emissionFactor"`
	FactorSource   FactorSource `json:"factorSource"`
	Price          float64      `json:"price"`
	Currency       string       `json:"currency"`

	Devices        []DeviceEnergy `json:"devices"`
	TotalEnergyKWh float64        `json:"totalEnergyKWh"`
	TotalCO2Kg     float64        `json:"totalCO2Kg"`

	RenewableKWh float64 `json:"renewableKWh"`
	NetEnergyKWh float64 `json:"netEnergyKWh"`
	NetCO2Kg     float64 `json:"netCO2Kg"`

	TotalCost float64 `json:"totalCost"`
	NetCost   float64 `json:"netCost"`
	// Savings is TotalCost minus NetCost, never negative.
	Savings float64 `json:"savings"`

	// Categories is in first-occurrence order; callers should treat it as unordered.
	Categories []CategoryEnergy `json:"categories"`
	Lifecycle  LifecycleTotals  `json:"lifecycle"`

	// Excluded lists devices that broke the power or usage bounds and were left out.
	Excluded []device.Device `json:"excluded,omitempty"`
}

// Comparison is a result measured against the region's household benchmark.
// Positive deltas mean the household is above the benchmark.
type Comparison struct {
	Region          string  `json:"region"`
	BenchmarkEnergy float64 `json:"benchmarkEnergyKWh"`
	BenchmarkCO2    float64 `json:"benchmarkCO2Kg"`
	EnergyDelta     float64 `json:"energyDelta"`
	CO2Delta        float64 `json:"co2Delta"`
}

// AboveBenchmark reports whether annual CO2 exceeds the benchmark.
func (c Comparison) AboveBenchmark() bool {
	return c.CO2Delta > 0
}

// Scenario pairs a baseline computation with a single-device substitution.
// Deltas are scenario minus baseline.
type Scenario struct {
	Index        int           `json:"index"`
	Original     device.Device `json:"original"`
	Hypothetical device.Device `json:"hypothetical"`
	Baseline     Result        `json:"baseline"`
	Result       Result        `json:"result"`
	EnergyDelta  float64       `json:"energyDelta"`
	CO2Delta     float64       `json:"co2Delta"`
	CostDelta    float64       `json:"costDelta"`
}
