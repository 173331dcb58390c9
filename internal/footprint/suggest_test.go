package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/device"
)

func TestRankByConsumption(t *testing.T) {
	devices := household()
	devices = append(devices, device.Device{ID: "broken", Name: "Broken", Category: "Other", PowerWatts: 0, UsageHoursPerDay: 1})

	ranked := RankByConsumption(devices)

	require.Len(t, ranked, 4)
	assert.Equal(t, "fridge", ranked[0].ID)
	assert.Equal(t, "desktop", ranked[1].ID)
	assert.Equal(t, "custom_1", ranked[2].ID)
	assert.Equal(t, "laptop", ranked[3].ID)
	assert.Equal(t, "laptop", devices[0].ID, "input order is kept")
}

func TestSuggest(t *testing.T) {
	advice := NewCalculator(nil).Suggest(household(), "World")

	require.NotNil(t, advice.Top)
	assert.Equal(t, "fridge", advice.Top.Device.ID)
	assert.InDelta(t, 1314.0*0.2, advice.Top.SavedKWh, epsilon)
	assert.InDelta(t, 1314.0*0.2*0.475, advice.Top.SavedCO2Kg, epsilon)
	assert.InDelta(t, 1314.0*0.2*0.15, advice.Top.SavedCost, epsilon)

	var categories []string
	for _, c := range advice.Tips {
		categories = append(categories, c.Category)
		assert.NotEmpty(t, c.Tips)
	}
	assert.Equal(t, []string{device.CategoryComputing, device.CategoryAppliance}, categories,
		"first-occurrence order, categories without tips skipped")
}

func TestSuggest_Empty(t *testing.T) {
	advice := NewCalculator(nil).Suggest(nil, "Brazil")

	assert.Nil(t, advice.Top)
	assert.Empty(t, advice.Tips)
}
