package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Fallback(t *testing.T) {
	tables := Default()

	brazil := tables.Region("Brazil")
	assert.Equal(t, "Brazil", brazil.Name)
	assert.InDelta(t, 0.09, brazil.EmissionFactor, 1e-12)
	assert.InDelta(t, 0.18, brazil.ElectricityPrice, 1e-12)

	for _, name := range []string{"Atlantis", "", "brazil", "WORLD"} {
		t.Run("unknown "+name, func(t *testing.T) {
			p, found := tables.LookupRegion(name)
			assert.False(t, found)
			assert.Equal(t, tables.Region(WorldRegion), p)
			assert.InDelta(t, 0.475, p.EmissionFactor, 1e-12)
		})
	}
}

func TestRegionNames(t *testing.T) {
	names := Default().RegionNames()
	require.Len(t, names, 8)
	assert.Equal(t, WorldRegion, names[0])
	assert.Equal(t, []string{"Australia", "Brazil", "Canada", "China", "EU", "India", "USA"}, names[1:])
}

func TestLifecycleAndCatalog(t *testing.T) {
	tables := Default()

	l, ok := tables.Lifecycle("laptop")
	require.True(t, ok)
	assert.InDelta(t, 200.0, l.ManufacturingKg, 0)
	assert.InDelta(t, 10.0, l.DisposalKg, 0)

	_, ok = tables.Lifecycle("custom_thing_01")
	assert.False(t, ok)

	catalog := tables.Catalog()
	require.Len(t, catalog, 10)
	catalog[0].Name = "mutated"
	d, ok := tables.CatalogDevice("laptop")
	require.True(t, ok)
	assert.Equal(t, "Laptop", d.Name, "catalog copies are independent")

	assert.Len(t, tables.Tips("Computing"), 2)
	assert.Empty(t, tables.Tips("Other"))
}

func TestDefault_IsIndependent(t *testing.T) {
	a := Default()
	b := a.Apply(&Overlay{SchemaVersion: "1.0.0", Regions: map[string]RegionProfile{
		"Brazil": {EmissionFactor: 0.5, ElectricityPrice: 0.2},
	}})
	assert.InDelta(t, 0.09, a.Region("Brazil").EmissionFactor, 1e-12)
	assert.InDelta(t, 0.5, b.Region("Brazil").EmissionFactor, 1e-12)
	assert.Equal(t, "USD", b.Region("Brazil").Currency, "currency defaults to World's")
}

func TestParseOverlay(t *testing.T) {
	valid := `
schema_version: "1.2.0"
regions:
  Germany:
    emission_factor: 0.38
    electricity_price: 0.40
    currency: EUR
    grid_zone: DE
    benchmark:
      energy_kwh: 3100
      co2_kg: 1180
lifecycle:
  heat_pump:
    manufacturing_kg: 900
    disposal_kg: 40
catalog:
  - id: heat_pump
    name: Heat Pump
    category: Appliance
    power_watts: 1500
    usage_hours_per_day: 6
  - id: laptop
    name: Work Laptop
    category: Computing
    power_watts: 65
    usage_hours_per_day: 9
tips:
  Appliance:
    - Service the heat pump yearly.
`
	o, err := ParseOverlay([]byte(valid))
	require.NoError(t, err)

	tables := Default().Apply(o)
	de, found := tables.LookupRegion("Germany")
	require.True(t, found)
	assert.Equal(t, "Germany", de.Name)
	assert.Equal(t, "EUR", de.Currency)
	assert.InDelta(t, 3100.0, de.Benchmark.EnergyKWh, 0)

	hp, ok := tables.CatalogDevice("heat_pump")
	require.True(t, ok)
	assert.Equal(t, "Heat Pump", hp.Name)

	laptop, _ := tables.CatalogDevice("laptop")
	assert.Equal(t, "Work Laptop", laptop.Name)
	assert.Len(t, tables.Catalog(), 11)

	assert.Equal(t, []string{"Service the heat pump yearly."}, tables.Tips("Appliance"))
}

func TestParseOverlay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"missing schema", "regions: {}\n", ErrUnsupportedSchema},
		{"bad schema", "schema_version: banana\n", ErrUnsupportedSchema},
		{"future major", "schema_version: 2.0.0\n", ErrUnsupportedSchema},
		{
			"zero factor",
			"schema_version: 1.0.0\nregions:\n  X:\n    emission_factor: 0\n",
			ErrInvalidOverlay,
		},
		{
			"negative lifecycle",
			"schema_version: 1.0.0\nlifecycle:\n  x:\n    manufacturing_kg: -1\n",
			ErrInvalidOverlay,
		},
		{
			"invalid catalog device",
			"schema_version: 1.0.0\ncatalog:\n  - id: x\n    name: X\n    category: Other\n    power_watts: 10\n    usage_hours_per_day: 30\n",
			ErrInvalidOverlay,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverlay([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: 1.0.0\n"), 0o600))

	o, err := LoadOverlayFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", o.SchemaVersion)

	_, err = LoadOverlayFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
