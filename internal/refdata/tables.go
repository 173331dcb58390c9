// Package refdata holds the static reference data the footprint calculation
// reads: the seed device catalog, per-region emission factors, household
// benchmarks and electricity prices, per-device lifecycle impact, and
// per-category saving tips.
//
// Tables are read-only once built. Region lookups always go through
// Tables.Region, the single lookup-with-default that falls back to World.
package refdata

import (
	"sort"

	"github.com/rshade/footprint/internal/device"
)

// WorldRegion is the fallback region used for any unknown region name.
const WorldRegion = "World"

// Benchmark is the reference annual consumption of an average household.
type Benchmark struct {
	EnergyKWh float64 `json:"energy_kwh" yaml:"energy_kwh"`
	CO2Kg     float64 `json:"co2_kg"     yaml:"co2_kg"`
}

// RegionProfile is the reference data for one region.
type RegionProfile struct {
	// Name is the region key, e.g. "Brazil".
	Name string `json:"name" yaml:"-"`

	// EmissionFactor is kg CO2 emitted per kWh consumed.
	EmissionFactor float64 `json:"emission_factor" yaml:"emission_factor"`

	// Benchmark is the average household's annual energy and CO2.
	Benchmark Benchmark `json:"benchmark" yaml:"benchmark"`

	// ElectricityPrice is the price per kWh in Currency.
	ElectricityPrice float64 `json:"electricity_price" yaml:"electricity_price"`

	// Currency is the ISO code ElectricityPrice is expressed in.
	Currency string `json:"currency" yaml:"currency"`

	// GridZone is the zone code used for the live carbon-intensity lookup.
	// Empty means the region has no live source.
	GridZone string `json:"grid_zone,omitempty" yaml:"grid_zone"`
}

// LifecycleImpact is the one-time embodied CO2e of a device, not annualised.
type LifecycleImpact struct {
	ManufacturingKg float64 `json:"manufacturing_kg" yaml:"manufacturing_kg"`
	DisposalKg      float64 `json:"disposal_kg"      yaml:"disposal_kg"`
}

// Tables bundles every reference table.
type Tables struct {
	regions   map[string]RegionProfile
	lifecycle map[string]LifecycleImpact
	catalog   []device.Device
	tips      map[string][]string
}

// Default returns the built-in reference tables. Each call returns an
// independent copy.
func Default() *Tables {
	t := &Tables{
		regions:   make(map[string]RegionProfile, len(builtinRegions)),
		lifecycle: make(map[string]LifecycleImpact, len(builtinLifecycle)),
		catalog:   device.Clone(builtinCatalog),
		tips:      make(map[string][]string, len(builtinTips)),
	}
	for name, p := range builtinRegions {
		p.Name = name
		t.regions[name] = p
	}
	for id, l := range builtinLifecycle {
		t.lifecycle[id] = l
	}
	for cat, tips := range builtinTips {
		t.tips[cat] = append([]string(nil), tips...)
	}
	return t
}

// Region returns the profile for name, or the World profile when name is unknown.
// It never fails.
func (t *Tables) Region(name string) RegionProfile {
	p, _ := t.LookupRegion(name)
	return p
}

// LookupRegion is Region plus a flag reporting whether name itself was found.
func (t *Tables) LookupRegion(name string) (RegionProfile, bool) {
	if p, ok := t.regions[name]; ok {
		return p, true
	}
	return t.regions[WorldRegion], false
}

// RegionNames lists every region, World first and the rest alphabetically.
func (t *Tables) RegionNames() []string {
	names := make([]string, 0, len(t.regions))
	for name := range t.regions {
		if name != WorldRegion {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{WorldRegion}, names...)
}

// Lifecycle returns the lifecycle impact for a catalog id.
func (t *Tables) Lifecycle(id string) (LifecycleImpact, bool) {
	l, ok := t.lifecycle[id]
	return l, ok
}

// Catalog returns a copy of the seed device list.
func (t *Tables) Catalog() []device.Device {
	return device.Clone(t.catalog)
}

// CatalogDevice returns the catalog entry with the given id.
func (t *Tables) CatalogDevice(id string) (device.Device, bool) {
	i := device.IndexOf(t.catalog, id)
	if i < 0 {
		return device.Device{}, false
	}
	return t.catalog[i], true
}

// Tips returns the saving tips for a category; nil when there are none.
func (t *Tables) Tips(category string) []string {
	return append([]string(nil), t.tips[category]...)
}
