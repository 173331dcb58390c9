package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/history"
	"github.com/rshade/footprint/internal/i18n"
)

// setupHome isolates the footprint home directory and global state.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FOOTPRINT_HOME", home)
	t.Setenv("FOOTPRINT_LOG_LEVEL", "error")
	t.Setenv("FOOTPRINT_REGION", "")
	t.Setenv("FOOTPRINT_LIVE", "")
	t.Setenv("FOOTPRINT_LANG", "")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type listedDevice struct {
	Position         int     `json:"position"`
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	PowerWatts       float64 `json:"powerWatts"`
	UsageHoursPerDay float64 `json:"usageHoursPerDay"`
	AnnualKWh        float64 `json:"annualKWh"`
}

func listDevices(t *testing.T, args ...string) []listedDevice {
	t.Helper()
	out, _, err := run(t, "", append([]string{"devices", "list", "-o", "json"}, args...)...)
	require.NoError(t, err)
	var devices []listedDevice
	require.NoError(t, json.Unmarshal([]byte(out), &devices))
	return devices
}

// importLaptop replaces the device list with a single 50 W laptop used 8 h/day.
func importLaptop(t *testing.T, home string) {
	t.Helper()
	path := filepath.Join(home, "laptop.json")
	payload := `[{"id":"laptop","name":"Laptop","category":"Computing","powerWatts":50,"usageHoursPerDay":8}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	out, _, err := run(t, "", "devices", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 devices")
}

func TestDevicesList_SeededFromCatalog(t *testing.T) {
	setupHome(t)

	devices := listDevices(t)
	require.Len(t, devices, 10)
	assert.Equal(t, 1, devices[0].Position)
	assert.Equal(t, "laptop", devices[0].ID)
	assert.InDelta(t, 146.0, devices[0].AnnualKWh, 1e-9)
}

func TestDevicesList_SortAndLimit(t *testing.T) {
	setupHome(t)

	devices := listDevices(t, "--sort", "energy", "--limit", "2")
	require.Len(t, devices, 2)
	assert.Equal(t, "fridge", devices[0].ID)
	assert.GreaterOrEqual(t, devices[0].AnnualKWh, devices[1].AnnualKWh)

	_, _, err := run(t, "", "devices", "list", "--sort", "colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort field")

	_, _, err = run(t, "", "devices", "list", "--limit", "-1")
	require.Error(t, err)
}

func TestDevicesAddEditRemove(t *testing.T) {
	setupHome(t)

	out, _, err := run(t, "", "devices", "add",
		"--name", "Gaming PC", "--category", "Computing", "--power", "350", "--hours", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Gaming PC")

	devices := listDevices(t)
	require.Len(t, devices, 11)
	added := devices[10]
	assert.Equal(t, "Gaming PC", added.Name)
	assert.NotEmpty(t, added.ID)

	_, _, err = run(t, "", "devices", "edit", "11", "--hours", "4")
	require.NoError(t, err)
	devices = listDevices(t)
	assert.InDelta(t, 4.0, devices[10].UsageHoursPerDay, 1e-9)
	assert.Equal(t, added.ID, devices[10].ID)

	_, _, err = run(t, "", "devices", "remove", added.ID)
	require.NoError(t, err)
	assert.Len(t, listDevices(t), 10)
}

func TestDevicesAdd_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing fields",
			args:    []string{"--name", "Kettle"},
			wantErr: "missing category, powerWatts, usageHoursPerDay",
		},
		{
			name:    "usage above a day",
			args:    []string{"--name", "Kettle", "--category", "Appliance", "--power", "2000", "--hours", "25"},
			wantErr: "invalid",
		},
		{
			name:    "negative power",
			args:    []string{"--name", "Kettle", "--category", "Appliance", "--power", "-1", "--hours", "1"},
			wantErr: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)
			_, _, err := run(t, "", append([]string{"devices", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Len(t, listDevices(t), 10, "list must be unchanged")
		})
	}
}

func TestDevicesEdit_UnknownReference(t *testing.T) {
	setupHome(t)

	_, _, err := run(t, "", "devices", "edit", "99", "--hours", "1")
	require.ErrorIs(t, err, footprint.ErrInvalidArgument)

	_, _, err = run(t, "", "devices", "remove", "toaster")
	require.ErrorIs(t, err, footprint.ErrInvalidArgument)
}

func TestDevicesReset(t *testing.T) {
	setupHome(t)
	t.Setenv("FOOTPRINT_FORCE_TTY", "1")

	_, _, err := run(t, "", "devices", "remove", "laptop")
	require.NoError(t, err)
	require.Len(t, listDevices(t), 9)

	out, _, err := run(t, "n\n", "devices", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset cancelled")
	assert.Len(t, listDevices(t), 9)

	out, _, err = run(t, "y\n", "devices", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "reset to 10 catalog devices")
	assert.Len(t, listDevices(t), 10)

	_, _, err = run(t, "", "devices", "remove", "1")
	require.NoError(t, err)
	_, _, err = run(t, "", "devices", "reset", "--yes")
	require.NoError(t, err)
	assert.Len(t, listDevices(t), 10)
}

func TestDevicesImport_MalformedKeepsList(t *testing.T) {
	home := setupHome(t)

	path := filepath.Join(home, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"not a list"}`), 0o600))

	_, _, err := run(t, "", "devices", "import", path)
	require.Error(t, err)
	assert.Len(t, listDevices(t), 10)

	_, _, err = run(t, "", "devices", "import", filepath.Join(home, "missing.json"))
	require.Error(t, err)
}

func TestDevicesImport_Stdin(t *testing.T) {
	setupHome(t)

	payload := `[{"name":"Heater","category":"Appliance","powerWatts":1500,"usageHoursPerDay":2}]`
	_, _, err := run(t, payload, "devices", "import", "-")
	require.NoError(t, err)

	devices := listDevices(t)
	require.Len(t, devices, 1)
	assert.Equal(t, "Heater", devices[0].Name)
	assert.NotEmpty(t, devices[0].ID)
}

func TestDevicesExport(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "devices", "export", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Name,Category,Power (W),Usage (hrs/day)\nLaptop,Computing,50,8\n", out)

	file := filepath.Join(home, "devices.json")
	_, stderr, err := run(t, "", "devices", "export", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote "+file)

	// The export round-trips through import.
	_, _, err = run(t, "", "devices", "import", file)
	require.NoError(t, err)
	devices := listDevices(t)
	require.Len(t, devices, 1)
	assert.Equal(t, "laptop", devices[0].ID)

	_, _, err = run(t, "", "devices", "export", "--format", "xml")
	require.Error(t, err)
}

func TestResults_Brazil(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)

	var res footprint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Brazil", res.Region)
	assert.Equal(t, footprint.FactorStatic, res.FactorSource)
	assert.InDelta(t, 146.0, res.TotalEnergyKWh, 1e-9)
	assert.InDelta(t, 13.14, res.TotalCO2Kg, 1e-9)
	assert.InDelta(t, 26.28, res.TotalCost, 1e-9)
}

func TestResults_RenewableFloorsNet(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "results", "--renewable", "500", "-o", "json")
	require.NoError(t, err)

	var res footprint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 0.0, res.NetEnergyKWh, 1e-9)
	assert.InDelta(t, 0.0, res.NetCO2Kg, 1e-9)
	assert.InDelta(t, res.TotalCost, res.Savings, 1e-9)

	_, _, err = run(t, "", "results", "--renewable", "-5")
	require.Error(t, err)
}

func TestResults_TableOutput(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "results", "--region", "Brazil")
	require.NoError(t, err)
	assert.Contains(t, out, "Footprint for Brazil")
	assert.Contains(t, out, "Laptop")
	assert.Contains(t, out, "CATEGORY")

	_, _, err = run(t, "", "results", "-o", "yaml")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "compare", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)
	var cmp footprint.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &cmp))
	assert.InDelta(t, 146.0-2500.0, cmp.EnergyDelta, 1e-9)
	assert.InDelta(t, 13.14-225.0, cmp.CO2Delta, 1e-9)

	out, _, err = run(t, "", "compare", "--all-regions", "--sort", "co2:asc", "-o", "json")
	require.NoError(t, err)
	var rows []struct {
		Region string  `json:"region"`
		CO2Kg  float64 `json:"co2Kg"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "Brazil", rows[0].Region)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].CO2Kg, rows[i].CO2Kg)
	}
}

func TestWhatIf_SwapType(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "whatif", "laptop", "--type", "desktop", "-o", "json")
	require.NoError(t, err)

	var sc footprint.Scenario
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, "Desktop PC", sc.Hypothetical.Name)
	assert.InDelta(t, 8.0, sc.Hypothetical.UsageHoursPerDay, 1e-9)
	assert.InDelta(t, 292.0, sc.EnergyDelta, 1e-9)

	// The stored list is untouched.
	assert.Equal(t, "Laptop", listDevices(t)[0].Name)
}

func TestWhatIf_Errors(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	tests := []struct {
		name string
		args []string
	}{
		{"no device", []string{"whatif"}},
		{"nothing changed", []string{"whatif", "1"}},
		{"unknown type", []string{"whatif", "1", "--type", "jetpack"}},
		{"hours out of range", []string{"whatif", "1", "--hours", "30"}},
		{"position out of range", []string{"whatif", "2", "--hours", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestSuggest(t *testing.T) {
	setupHome(t)

	out, _, err := run(t, "", "suggest", "-o", "json")
	require.NoError(t, err)

	var advice footprint.Advice
	require.NoError(t, json.Unmarshal([]byte(out), &advice))
	require.NotNil(t, advice.Top)
	assert.Equal(t, "fridge", advice.Top.Device.ID)
	assert.InDelta(t, footprint.UsageReduction, advice.Top.Reduction, 1e-9)
	assert.NotEmpty(t, advice.Tips)

	out, _, err = run(t, "", "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "Your biggest consumer is Refrigerator")
}

func TestHistory_SaveAndList(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No history yet")

	_, _, err = run(t, "", "history", "save", "--region", "Brazil")
	require.NoError(t, err)
	_, _, err = run(t, "", "results", "--save", "--region", "India", "-o", "json")
	require.NoError(t, err)

	out, _, err = run(t, "", "history", "list", "-o", "json")
	require.NoError(t, err)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "India", entries[0].Region)
	assert.Equal(t, "Brazil", entries[1].Region)
	assert.Equal(t, "Laptop", entries[0].Devices)

	out, _, err = run(t, "", "history", "list", "--sort", "co2:asc", "--limit", "1", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Brazil", entries[0].Region)
}

func TestReport(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	file := filepath.Join(home, "report.csv")
	_, _, err := run(t, "", "report", "--format", "csv", "--file", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t,
		"Device,Category,Power (W),Usage (hrs/day),Annual Energy (kWh)\nLaptop,Computing,50,8,146.0\n",
		string(data))

	out, _, err := run(t, "", "report", "--region", "Brazil")
	require.NoError(t, err)
	assert.Contains(t, out, "# Household Energy Footprint Report")
	assert.Contains(t, out, "Region: Brazil")

	out, _, err = run(t, "", "report", "--format", "json")
	require.NoError(t, err)
	var r struct {
		Totals struct {
			EnergyKWh float64 `json:"energyKWh"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 146.0, r.Totals.EnergyKWh, 1e-9)

	_, _, err = run(t, "", "report", "--format", "pdf")
	require.Error(t, err)
}

func TestRegions(t *testing.T) {
	setupHome(t)

	out, _, err := run(t, "", "regions", "-o", "json")
	require.NoError(t, err)
	var rows []struct {
		Name           string  `json:"name"`
		EmissionFactor float64 `json:"emission_factor"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "World", rows[0].Name)

	out, _, err = run(t, "", "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "Brazil")
}

// writeLiveConfig enables the live lookup against endpoint.
func writeLiveConfig(t *testing.T, home, endpoint string) {
	t.Helper()
	cfg := config.Default()
	cfg.Live.Enabled = true
	cfg.Live.Endpoint = endpoint
	cfg.Live.TimeoutSeconds = 2
	cfg.SetPath(filepath.Join(home, config.ConfigFileName))
	require.NoError(t, cfg.Save())
}

func TestResults_LiveFactor(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BR", r.URL.Query().Get("countryCode"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"carbonIntensity":120}}`))
	}))
	defer srv.Close()
	writeLiveConfig(t, home, srv.URL)

	out, _, err := run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)

	var res footprint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, footprint.FactorLive, res.FactorSource)
	assert.InDelta(t, 0.12, res.EmissionFactor, 1e-9)
	assert.InDelta(t, 146.0*0.12, res.TotalCO2Kg, 1e-9)
}

func TestResults_LiveFailureFallsBack(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	writeLiveConfig(t, home, srv.URL)

	out, _, err := run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)

	var res footprint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, footprint.FactorStatic, res.FactorSource)
	assert.InDelta(t, 13.14, res.TotalCO2Kg, 1e-9)
}

func TestConfigInitShowValidate(t *testing.T) {
	home := setupHome(t)

	out, _, err := run(t, "", "config", "init", "--default-region", "India")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	_, statErr := os.Stat(filepath.Join(home, config.ConfigFileName))
	require.NoError(t, statErr)

	_, _, err = run(t, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, _, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "region: India")

	out, _, err = run(t, "", "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Region: India")

	_, _, err = run(t, "", "config", "init", "--force", "--default-region", "Atlantis")
	require.Error(t, err)
}

func TestConfigShow_MasksToken(t *testing.T) {
	setupHome(t)
	t.Setenv("FOOTPRINT_LIVE_TOKEN", "secret-token")

	out, _, err := run(t, "", "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "********")
}

func TestConfigValidate_Invalid(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, config.ConfigFileName),
		[]byte("output:\n  default_format: xml\n"), 0o600))

	_, _, err := run(t, "", "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestHomeFlag(t *testing.T) {
	envHome := setupHome(t)
	other := t.TempDir()

	cfg := config.Default()
	cfg.Region = "India"
	cfg.SetPath(filepath.Join(other, config.ConfigFileName))
	require.NoError(t, cfg.Save())

	out, _, err := run(t, "", "--home", other, "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"region": "India"`, "config is read from the flag's home")
	assert.Equal(t, envHome, os.Getenv("FOOTPRINT_HOME"))

	_, _, err = run(t, "", "--home", other, "devices", "remove", "1")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(other, "data"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(envHome, "data"))
	assert.True(t, os.IsNotExist(statErr), "the environment's home is untouched")
}

func TestLanguage(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	out, _, err := run(t, "", "devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")

	out, _, err = run(t, "", "--lang", "es", "devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORÍA")
	assert.Contains(t, out, "146,0")
	assert.NotContains(t, out, "CATEGORY")

	t.Setenv("FOOTPRINT_LANG", "es-MX")
	out, _, err = run(t, "", "results", "--region", "Brazil")
	require.NoError(t, err)
	assert.Contains(t, out, "Huella de Brazil")
	assert.Contains(t, out, "Energía anual")
	assert.Contains(t, out, "146,0 kWh")

	out, _, err = run(t, "", "--lang", "en", "results", "--region", "Brazil")
	require.NoError(t, err)
	assert.Contains(t, out, "Footprint for Brazil", "the flag wins over the environment")

	out, _, err = run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"region": "Brazil"`, "json output is not translated")

	_, _, err = run(t, "", "--lang", "fr", "devices", "list")
	require.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestResults_LiveCacheFallsBackToMemory(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	dataDir := filepath.Join(home, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "cache"), []byte("not a directory"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"carbonIntensity":120}}`))
	}))
	defer srv.Close()
	writeLiveConfig(t, home, srv.URL)

	out, _, err := run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)

	var res footprint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, footprint.FactorLive, res.FactorSource)
	assert.InDelta(t, 0.12, res.EmissionFactor, 1e-9)
}

func TestResults_LiveSweepsExpiredCache(t *testing.T) {
	home := setupHome(t)
	importLaptop(t, home)

	cacheDir := filepath.Join(home, "data", "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o750))
	stale := filepath.Join(cacheDir, "stale.json")
	require.NoError(t, os.WriteFile(stale, []byte(
		`{"key":"stale","value":"","created_at":"2020-01-01T00:00:00Z","expires_at":"2020-01-01T01:00:00Z"}`), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"carbonIntensity":120}}`))
	}))
	defer srv.Close()
	writeLiveConfig(t, home, srv.URL)

	_, _, err := run(t, "", "results", "--region", "Brazil", "-o", "json")
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr), "expired entries are removed after the lookup")
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "the fresh lookup stays cached")
}

func TestFailedCommandClosesLogFile(t *testing.T) {
	home := setupHome(t)
	logPath := filepath.Join(home, "logs", "footprint.log")

	cfg := config.Default()
	cfg.Logging.File = logPath
	cfg.SetPath(filepath.Join(home, config.ConfigFileName))
	require.NoError(t, cfg.Save())

	_, _, err := run(t, "", "devices", "remove", "99")
	require.Error(t, err)

	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "command failed")
	assert.Contains(t, string(data), "position 99")

	fds, dirErr := os.ReadDir("/proc/self/fd")
	if dirErr != nil {
		t.Skip("open file descriptors cannot be listed on this platform")
	}
	for _, fd := range fds {
		target, linkErr := os.Readlink(filepath.Join("/proc/self/fd", fd.Name()))
		if linkErr != nil {
			continue
		}
		assert.NotEqual(t, logPath, target, "log file is still open")
	}
}

func TestDevicesImport_DuplicateIDs(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "dupes.json")
	payload := `[{"id":"tv","name":"Living Room TV","category":"Entertainment","powerWatts":100,"usageHoursPerDay":3},
{"id":"tv","name":"Bedroom TV","category":"Entertainment","powerWatts":60,"usageHoursPerDay":1}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	_, _, err := run(t, "", "devices", "import", path)
	require.NoError(t, err)

	devices := listDevices(t)
	require.Len(t, devices, 2)
	assert.Equal(t, "tv", devices[0].ID)
	require.NotEqual(t, "tv", devices[1].ID)

	_, _, err = run(t, "", "devices", "edit", devices[1].ID, "--hours", "2")
	require.NoError(t, err)

	devices = listDevices(t)
	assert.InDelta(t, 3.0, devices[0].UsageHoursPerDay, 0, "the first tv is untouched")
	assert.InDelta(t, 2.0, devices[1].UsageHoursPerDay, 0)
	assert.Equal(t, "Bedroom TV", devices[1].Name)
}
