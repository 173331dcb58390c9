// Package config loads footprint's settings from defaults, the YAML config
// file under the footprint home directory, and FOOTPRINT_* environment
// variables, in that order. Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/grid"
	"github.com/rshade/footprint/internal/i18n"
	"github.com/rshade/footprint/internal/refdata"
)

// ConfigFileName is the config file's name inside the footprint home directory.
const ConfigFileName = "config.yaml"

// Output formats accepted by Output.DefaultFormat.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

const maxPrecision = 6

// ErrInvalidConfig indicates a setting is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete footprint configuration.
type Config struct {
	// Region is the default region for computations.
	Region string `json:"region" yaml:"region"`
	// RenewableKWh is the default annual renewable offset.
	RenewableKWh float64 `json:"renewable_kwh" yaml:"renewable_kwh"`
	// Language selects the output language, "en" or "es".
	Language string `json:"language" yaml:"language"`
	// ReferenceFile optionally names a YAML overlay for the reference tables.
	ReferenceFile string `json:"reference_file,omitempty" yaml:"reference_file,omitempty"`

	Output  OutputConfig  `json:"output" yaml:"output"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Live    LiveConfig    `json:"live" yaml:"live"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	path string
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
	Precision     int    `json:"precision" yaml:"precision"`
}

// StorageConfig locates persisted state.
type StorageConfig struct {
	// Dir holds the device list and history. Empty means <home>/data.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// LiveConfig configures the live carbon-intensity lookup.
type LiveConfig struct {
	Enabled           bool   `json:"enabled" yaml:"enabled"`
	Endpoint          string `json:"endpoint" yaml:"endpoint"`
	Token             string `json:"token,omitempty" yaml:"token,omitempty"`
	TimeoutSeconds    int    `json:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerMinute int    `json:"requests_per_minute" yaml:"requests_per_minute"`
	CacheSize         int    `json:"cache_size" yaml:"cache_size"`
	CacheTTLSeconds   int    `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Region:   refdata.WorldRegion,
		Language: "en",
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     1,
		},
		Live: LiveConfig{
			Endpoint:          grid.DefaultEndpoint,
			TimeoutSeconds:    int(grid.DefaultTimeout.Seconds()),
			RequestsPerMinute: grid.DefaultRequestsPerMinute,
			CacheSize:         grid.DefaultCacheSize,
			CacheTTLSeconds:   int(grid.DefaultCacheTTL.Seconds()),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// New returns the effective configuration: defaults, then the config file if
// present, then environment overrides. A config file that cannot be read is
// reported through the global logger and skipped.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		path := filepath.Join(dir, ConfigFileName)
		cfg.path = path
		if loaded, loadErr := Load(path); loadErr == nil {
			cfg = loaded
		} else if !errors.Is(loadErr, os.ErrNotExist) {
			logger := GetLogger()
			logger.Warn().Str("component", "config").Str("path", path).Err(loadErr).
				Msg("ignoring unreadable config file")
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads path over the defaults. Environment overrides are not applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// ApplyEnv applies FOOTPRINT_* overrides. Unparsable values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("FOOTPRINT_REGION"); ok && v != "" {
		c.Region = v
	}
	if v, ok := lookup("FOOTPRINT_RENEWABLE_KWH"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			c.RenewableKWh = f
		}
	}
	if v, ok := lookup("FOOTPRINT_LIVE"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Live.Enabled = b
		}
	}
	if v, ok := lookup("FOOTPRINT_LIVE_TOKEN"); ok && v != "" {
		c.Live.Token = v
	}
	if v, ok := lookup("FOOTPRINT_LANG"); ok && v != "" {
		c.Language = v
	}
	if v, ok := lookup("FOOTPRINT_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: output.default_format must be %q or %q, got %q",
			ErrInvalidConfig, FormatTable, FormatJSON, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be between 0 and %d, got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}
	if _, err := i18n.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language: %w", ErrInvalidConfig, err)
	}
	if c.RenewableKWh < 0 {
		return fmt.Errorf("%w: renewable_kwh must not be negative, got %v", ErrInvalidConfig, c.RenewableKWh)
	}
	if c.Live.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: live.timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.Live.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: live.requests_per_minute must be positive", ErrInvalidConfig)
	}
	if c.Live.CacheSize <= 0 {
		return fmt.Errorf("%w: live.cache_size must be positive", ErrInvalidConfig)
	}
	if c.Live.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: live.cache_ttl_seconds must not be negative", ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.ReferenceFile != "" {
		if _, err := refdata.LoadOverlayFile(c.ReferenceFile); err != nil {
			return fmt.Errorf("%w: reference_file: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.path
}

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) {
	c.path = path
}

// StorageDir returns the directory for persisted state.
func (c *Config) StorageDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// Save writes the config as YAML, atomically.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, ConfigFileName)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
