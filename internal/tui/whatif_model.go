package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/footprint"
)

// hoursStep is the usage adjustment of one +/- key press.
const hoursStep = 0.5

// WhatIfKeyMap are the what-if key bindings.
type WhatIfKeyMap struct {
	CycleType key.Binding
	MoreHours key.Binding
	LessHours key.Binding
	EditHours key.Binding
	Reset     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

// DefaultWhatIfKeys returns the default bindings.
func DefaultWhatIfKeys() WhatIfKeyMap {
	return WhatIfKeyMap{
		CycleType: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "change type")),
		MoreHours: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more hours")),
		LessHours: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer hours")),
		EditHours: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "set hours")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// WhatIfModel lets the user pick a device, swap its type for a catalog
// entry or change its hours, and see the scenario delta live.
type WhatIfModel struct {
	calc    *footprint.Calculator
	params  footprint.Params
	devices []device.Device
	catalog []device.Device
	keys    WhatIfKeyMap

	table    table.Model
	hours    textinput.Model
	editing  bool
	selected int
	// catalogPos is the index into catalog of the current type, -1 for the device's own.
	catalogPos   int
	hypothetical device.Device
	scenario     *footprint.Scenario
	err          error
	quitting     bool
}

// NewWhatIfModel builds a model over devices. The device list is copied.
func NewWhatIfModel(calc *footprint.Calculator, devices []device.Device, params footprint.Params) *WhatIfModel {
	hours := textinput.New()
	hours.Placeholder = "hours per day"
	hours.CharLimit = 5

	m := &WhatIfModel{
		calc:    calc,
		params:  params,
		devices: device.Clone(devices),
		catalog: calc.Tables().Catalog(),
		keys:    DefaultWhatIfKeys(),
		hours:   hours,
	}
	m.table = m.buildTable()
	m.selectDevice(0)
	return m
}

func (m *WhatIfModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Device", Width: 22},
		{Title: "Category", Width: 14},
		{Title: "W", Width: 7},
		{Title: "h/day", Width: 6},
	}
	rows := make([]table.Row, len(m.devices))
	for i, d := range m.devices {
		rows[i] = table.Row{
			d.Name,
			d.Category,
			strconv.FormatFloat(d.PowerWatts, 'f', -1, 64),
			strconv.FormatFloat(d.UsageHoursPerDay, 'f', -1, 64),
		}
	}
	const maxHeight = 10
	height := len(rows) + 1
	if height > maxHeight {
		height = maxHeight
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderForeground(ColorBorder).Bold(true)
	s.Selected = s.Selected.Foreground(ColorHeader).Bold(true)
	t.SetStyles(s)
	return t
}

func (m *WhatIfModel) selectDevice(i int) {
	if i < 0 || i >= len(m.devices) {
		m.scenario = nil
		return
	}
	m.selected = i
	m.catalogPos = -1
	m.hypothetical = m.devices[i]
	m.evaluate()
}

func (m *WhatIfModel) evaluate() {
	sc, err := m.calc.EvaluateScenario(m.devices, m.selected, m.hypothetical, m.params)
	if err != nil {
		m.err = err
		m.scenario = nil
		return
	}
	m.err = nil
	m.scenario = &sc
}

// Scenario returns the scenario on screen, nil when there is none.
func (m *WhatIfModel) Scenario() *footprint.Scenario {
	return m.scenario
}

// Hypothetical returns the device being previewed.
func (m *WhatIfModel) Hypothetical() device.Device {
	return m.hypothetical
}

// Init implements tea.Model.
func (m *WhatIfModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *WhatIfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.CycleType):
		m.cycleType()
		return m, nil
	case key.Matches(keyMsg, m.keys.MoreHours):
		m.adjustHours(hoursStep)
		return m, nil
	case key.Matches(keyMsg, m.keys.LessHours):
		m.adjustHours(-hoursStep)
		return m, nil
	case key.Matches(keyMsg, m.keys.Reset):
		m.selectDevice(m.selected)
		return m, nil
	case key.Matches(keyMsg, m.keys.EditHours):
		if len(m.devices) == 0 {
			return m, nil
		}
		m.editing = true
		m.hours.SetValue(strconv.FormatFloat(m.hypothetical.UsageHoursPerDay, 'f', -1, 64))
		m.hours.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	if c := m.table.Cursor(); c != m.selected {
		m.selectDevice(c)
	}
	return m, cmd
}

func (m *WhatIfModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.hours.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		v, err := strconv.ParseFloat(strings.TrimSpace(m.hours.Value()), 64)
		if err != nil || v < 0 || v > device.MaxUsageHoursPerDay {
			m.err = fmt.Errorf("hours must be a number between 0 and %g", device.MaxUsageHoursPerDay)
			return m, nil
		}
		m.editing = false
		m.hours.Blur()
		m.hypothetical.UsageHoursPerDay = v
		m.evaluate()
		return m, nil
	}

	var cmd tea.Cmd
	m.hours, cmd = m.hours.Update(msg)
	return m, cmd
}

func (m *WhatIfModel) cycleType() {
	if len(m.devices) == 0 || len(m.catalog) == 0 {
		return
	}
	m.catalogPos++
	if m.catalogPos >= len(m.catalog) {
		m.catalogPos = -1
		usage := m.hypothetical.UsageHoursPerDay
		m.hypothetical = m.devices[m.selected]
		m.hypothetical.UsageHoursPerDay = usage
		m.evaluate()
		return
	}
	swapped, err := m.calc.SwapForCatalog(m.hypothetical, m.catalog[m.catalogPos].ID)
	if err != nil {
		m.err = err
		return
	}
	m.hypothetical = swapped
	m.evaluate()
}

func (m *WhatIfModel) adjustHours(step float64) {
	if len(m.devices) == 0 {
		return
	}
	h := m.hypothetical.UsageHoursPerDay + step
	if h < 0 {
		h = 0
	}
	if h > device.MaxUsageHoursPerDay {
		h = device.MaxUsageHoursPerDay
	}
	m.hypothetical.UsageHoursPerDay = h
	m.evaluate()
}

// View implements tea.Model.
func (m *WhatIfModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.devices) == 0 {
		return LabelStyle.Render("No devices to compare. Add one with 'footprint devices add'.") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")
	if m.scenario != nil {
		sb.WriteString(RenderScenario(*m.scenario))
		sb.WriteString("\n")
	}
	if m.editing {
		sb.WriteString(LabelStyle.Render("hours: "))
		sb.WriteString(m.hours.View())
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(ErrorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(LabelStyle.Render(m.helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

func (m *WhatIfModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.CycleType, m.keys.MoreHours, m.keys.LessHours,
		m.keys.EditHours, m.keys.Reset, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "↑/↓ select")
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
