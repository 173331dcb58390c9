package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/i18n"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testDevices() []device.Device {
	return []device.Device{
		{ID: "desktop", Name: "Desktop PC", Category: device.CategoryComputing, PowerWatts: 150, UsageHoursPerDay: 8},
		{ID: "tv", Name: "Television", Category: device.CategoryEntertainment, PowerWatts: 100, UsageHoursPerDay: 3},
	}
}

func TestRenderDelta(t *testing.T) {
	assert.Contains(t, RenderDelta(english, 12.34, "kWh"), "+12.3 kWh "+IconArrowUp)
	assert.Contains(t, RenderDelta(english, -1500, "kg"), "-1,500.0 kg "+IconArrowDown)
	assert.Contains(t, RenderDelta(english, 0.01, "kWh"), IconArrowRight)
	assert.Contains(t, RenderDelta(greenops.NewFormatter(language.Spanish), 12.34, "kWh"), "+12,3 kWh")
}

func TestRenderSummary(t *testing.T) {
	calc := footprint.NewCalculator(nil)
	res := calc.Compute(testDevices(), footprint.Params{Region: "USA", RenewableKWh: 100, LiveFactor: 0.3})
	out := RenderSummary(i18n.NewPrinter(language.English), res, calc.Compare(res, "USA"))

	assert.Contains(t, out, "Footprint for USA")
	assert.Contains(t, out, "live")
	assert.Contains(t, out, "Net energy")
	assert.Contains(t, out, "vs. average household")
}

func TestRenderSummary_Spanish(t *testing.T) {
	calc := footprint.NewCalculator(nil)
	res := calc.Compute(testDevices(), footprint.Params{Region: "USA", RenewableKWh: 100})
	out := RenderSummary(i18n.NewPrinter(language.Spanish), res, calc.Compare(res, "USA"))

	assert.Contains(t, out, "Huella de USA")
	assert.Contains(t, out, "Energía anual")
	assert.Contains(t, out, "Energía neta")
	assert.Contains(t, out, "vs. hogar promedio")
	assert.NotContains(t, out, "Annual energy")
}

func TestWhatIfModel_CycleTypeAndHours(t *testing.T) {
	calc := footprint.NewCalculator(nil)
	m := NewWhatIfModel(calc, testDevices(), footprint.Params{Region: "World"})

	require.NotNil(t, m.Scenario())
	assert.InDelta(t, 0.0, m.Scenario().EnergyDelta, 1e-9)

	m.Update(runes("t"))
	h := m.Hypothetical()
	assert.Equal(t, "desktop", h.ID, "id is kept")
	assert.Equal(t, "Laptop", h.Name, "first catalog entry")
	assert.InDelta(t, 8.0, h.UsageHoursPerDay, 0)
	assert.InDelta(t, -292.0, m.Scenario().EnergyDelta, 1e-9)

	m.Update(runes("+"))
	assert.InDelta(t, 8.5, m.Hypothetical().UsageHoursPerDay, 0)

	m.Update(runes("r"))
	assert.Equal(t, "Desktop PC", m.Hypothetical().Name)
	assert.InDelta(t, 0.0, m.Scenario().EnergyDelta, 1e-9)
}

func TestWhatIfModel_HoursClamp(t *testing.T) {
	devices := []device.Device{{ID: "x", Name: "X", Category: "Other", PowerWatts: 10, UsageHoursPerDay: 0}}
	m := NewWhatIfModel(footprint.NewCalculator(nil), devices, footprint.Params{})

	m.Update(runes("-"))
	assert.Zero(t, m.Hypothetical().UsageHoursPerDay)
}

func TestWhatIfModel_EditHours(t *testing.T) {
	m := NewWhatIfModel(footprint.NewCalculator(nil), testDevices(), footprint.Params{Region: "World"})

	m.Update(runes("h"))
	require.True(t, m.editing)
	m.hours.SetValue("4")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editing)
	assert.InDelta(t, 4.0, m.Hypothetical().UsageHoursPerDay, 0)
	assert.InDelta(t, -219.0, m.Scenario().EnergyDelta, 1e-9)

	m.Update(runes("h"))
	m.hours.SetValue("30")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.editing, "out-of-range hours keep the editor open")
	assert.Error(t, m.err)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.InDelta(t, 4.0, m.Hypothetical().UsageHoursPerDay, 0)
}

func TestWhatIfModel_SelectAndQuit(t *testing.T) {
	m := NewWhatIfModel(footprint.NewCalculator(nil), testDevices(), footprint.Params{})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "tv", m.Hypothetical().ID)
	assert.Contains(t, m.View(), "What-if")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestWhatIfModel_Empty(t *testing.T) {
	m := NewWhatIfModel(footprint.NewCalculator(nil), nil, footprint.Params{})

	assert.Nil(t, m.Scenario())
	m.Update(runes("t"))
	m.Update(runes("+"))
	assert.Contains(t, m.View(), "No devices")
}
