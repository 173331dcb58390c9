package refdata

import "github.com/rshade/footprint/internal/device"

// Built-in reference values. Emission factors are kg CO2/kWh, benchmarks are
// annual household figures, prices are USD/kWh.
//
//nolint:gochecknoglobals // Static reference tables.
var builtinRegions = map[string]RegionProfile{
	WorldRegion: {EmissionFactor: 0.475, Benchmark: Benchmark{EnergyKWh: 3500, CO2Kg: 1660}, ElectricityPrice: 0.15, Currency: "USD"},
	"USA":       {EmissionFactor: 0.385, Benchmark: Benchmark{EnergyKWh: 11000, CO2Kg: 4235}, ElectricityPrice: 0.16, Currency: "USD", GridZone: "US"},
	"EU":        {EmissionFactor: 0.255, Benchmark: Benchmark{EnergyKWh: 4000, CO2Kg: 1020}, ElectricityPrice: 0.30, Currency: "USD"},
	"India":     {EmissionFactor: 0.708, Benchmark: Benchmark{EnergyKWh: 1200, CO2Kg: 850}, ElectricityPrice: 0.08, Currency: "USD", GridZone: "IN"},
	"China":     {EmissionFactor: 0.681, Benchmark: Benchmark{EnergyKWh: 1700, CO2Kg: 1150}, ElectricityPrice: 0.09, Currency: "USD", GridZone: "CN"},
	"Australia": {EmissionFactor: 0.7, Benchmark: Benchmark{EnergyKWh: 6000, CO2Kg: 4200}, ElectricityPrice: 0.25, Currency: "USD", GridZone: "AU"},
	"Canada":    {EmissionFactor: 0.15, Benchmark: Benchmark{EnergyKWh: 11000, CO2Kg: 1650}, ElectricityPrice: 0.13, Currency: "USD", GridZone: "CA"},
	"Brazil":    {EmissionFactor: 0.09, Benchmark: Benchmark{EnergyKWh: 2500, CO2Kg: 225}, ElectricityPrice: 0.18, Currency: "USD", GridZone: "BR"},
}

//nolint:gochecknoglobals // Static reference tables.
var builtinCatalog = []device.Device{
	{ID: "laptop", Name: "Laptop", Category: device.CategoryComputing, PowerWatts: 50, UsageHoursPerDay: 8},
	{ID: "desktop", Name: "Desktop PC", Category: device.CategoryComputing, PowerWatts: 150, UsageHoursPerDay: 8},
	{ID: "smartphone", Name: "Smartphone", Category: device.CategoryMobile, PowerWatts: 5, UsageHoursPerDay: 4},
	{ID: "tv", Name: "Television", Category: device.CategoryEntertainment, PowerWatts: 100, UsageHoursPerDay: 3},
	{ID: "fridge", Name: "Refrigerator", Category: device.CategoryAppliance, PowerWatts: 150, UsageHoursPerDay: 24},
	{ID: "washing_machine", Name: "Washing Machine", Category: device.CategoryAppliance, PowerWatts: 500, UsageHoursPerDay: 0.5},
	{ID: "microwave", Name: "Microwave Oven", Category: device.CategoryAppliance, PowerWatts: 1200, UsageHoursPerDay: 0.2},
	{ID: "light_led", Name: "LED Light Bulb", Category: device.CategoryLighting, PowerWatts: 10, UsageHoursPerDay: 5},
	{ID: "router", Name: "WiFi Router", Category: device.CategoryNetworking, PowerWatts: 8, UsageHoursPerDay: 24},
	{ID: "fan", Name: "Ceiling Fan", Category: device.CategoryAppliance, PowerWatts: 75, UsageHoursPerDay: 6},
}

// Lifecycle impact in kg CO2e, keyed by catalog id.
//
//nolint:gochecknoglobals // Static reference tables.
var builtinLifecycle = map[string]LifecycleImpact{
	"laptop":          {ManufacturingKg: 200, DisposalKg: 10},
	"desktop":         {ManufacturingKg: 350, DisposalKg: 15},
	"smartphone":      {ManufacturingKg: 70, DisposalKg: 5},
	"tv":              {ManufacturingKg: 250, DisposalKg: 12},
	"fridge":          {ManufacturingKg: 400, DisposalKg: 20},
	"washing_machine": {ManufacturingKg: 600, DisposalKg: 25},
	"microwave":       {ManufacturingKg: 120, DisposalKg: 8},
	"light_led":       {ManufacturingKg: 5, DisposalKg: 0.5},
	"router":          {ManufacturingKg: 30, DisposalKg: 2},
	"fan":             {ManufacturingKg: 40, DisposalKg: 2},
}

//nolint:gochecknoglobals // Static reference tables.
var builtinTips = map[string][]string{
	device.CategoryComputing: {
		"Enable power-saving mode on computers and laptops.",
		"Shut down or sleep devices when not in use.",
	},
	device.CategoryAppliance: {
		"Use energy-efficient appliances (look for ENERGY STAR label).",
		"Run washing machines and dishwashers with full loads.",
	},
	device.CategoryLighting: {
		"Switch to LED bulbs.",
		"Turn off lights when not needed.",
	},
	device.CategoryEntertainment: {
		"Reduce screen brightness.",
		"Turn off TVs and consoles when not in use.",
	},
	device.CategoryNetworking: {
		"Turn off routers when away for extended periods.",
	},
	device.CategoryMobile: {
		"Use battery saver mode.",
	},
}
