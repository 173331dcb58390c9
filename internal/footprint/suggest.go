package footprint

import (
	"sort"

	"github.com/rshade/footprint/internal/device"
)

// UsageReduction is the share of daily usage a suggestion proposes cutting.
const UsageReduction = 0.2

// Suggestion is a saving proposal for the highest-consuming device.
type Suggestion struct {
	Device device.Device `json:"device"`
	// Reduction is the fraction of usage cut, e.g. 0.2.
	Reduction  float64 `json:"reduction"`
	SavedKWh   float64 `json:"savedKWh"`
	SavedCO2Kg float64 `json:"savedCO2Kg"`
	SavedCost  float64 `json:"savedCost"`
}

// CategoryTips are the tips for one category present in the device list.
type CategoryTips struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
}

// Advice bundles the top-consumer suggestion with per-category tips.
type Advice struct {
	// Top is nil when no device is countable.
	Top  *Suggestion    `json:"top,omitempty"`
	Tips []CategoryTips `json:"tips"`
}

// RankByConsumption returns the countable devices ordered by power × hours,
// highest first. Ties keep list order.
func RankByConsumption(devices []device.Device) []device.Device {
	ranked := make([]device.Device, 0, len(devices))
	for _, d := range devices {
		if d.Countable() {
			ranked = append(ranked, d)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DailyWattHours() > ranked[j].DailyWattHours()
	})
	return ranked
}

// Suggest proposes cutting the top consumer's usage by UsageReduction and
// collects tips for every category present, in first-occurrence order.
// Savings use the region's static emission factor.
func (c *Calculator) Suggest(devices []device.Device, region string) Advice {
	profile := c.tables.Region(region)
	advice := Advice{Tips: []CategoryTips{}}

	if ranked := RankByConsumption(devices); len(ranked) > 0 {
		top := ranked[0]
		saved := top.AnnualKWh() * UsageReduction
		advice.Top = &Suggestion{
			Device:     top,
			Reduction:  UsageReduction,
			SavedKWh:   saved,
			SavedCO2Kg: saved * profile.EmissionFactor,
			SavedCost:  saved * profile.ElectricityPrice,
		}
	}

	seen := make(map[string]bool)
	for _, d := range devices {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		if tips := c.tables.Tips(d.Category); len(tips) > 0 {
			advice.Tips = append(advice.Tips, CategoryTips{Category: d.Category, Tips: tips})
		}
	}
	return advice
}
