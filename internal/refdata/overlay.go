package refdata

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/device"
)

// SupportedSchema is the overlay schema_version constraint this build accepts.
const SupportedSchema = "^1.0.0"

var (
	// ErrUnsupportedSchema indicates the overlay's schema_version is missing,
	// unparseable, or outside SupportedSchema.
	ErrUnsupportedSchema = errors.New("unsupported reference overlay schema")

	// ErrInvalidOverlay indicates an overlay entry has an out-of-range value.
	ErrInvalidOverlay = errors.New("invalid reference overlay")
)

// Overlay extends or replaces built-in reference entries. It is read from a
// YAML file named by the reference_file config key.
type Overlay struct {
	SchemaVersion string                     `yaml:"schema_version"`
	Regions       map[string]RegionProfile   `yaml:"regions"`
	Lifecycle     map[string]LifecycleImpact `yaml:"lifecycle"`
	Catalog       []overlayDevice            `yaml:"catalog"`
	Tips          map[string][]string        `yaml:"tips"`
}

// overlayDevice is the YAML shape of a catalog entry.
type overlayDevice struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Category         string  `yaml:"category"`
	PowerWatts       float64 `yaml:"power_watts"`
	UsageHoursPerDay float64 `yaml:"usage_hours_per_day"`
}

// LoadOverlayFile reads and validates an overlay file.
func LoadOverlayFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference overlay %s: %w", path, err)
	}
	return ParseOverlay(data)
}

// ParseOverlay decodes and validates overlay YAML.
func ParseOverlay(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing reference overlay: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Validate checks the schema version and every entry.
func (o *Overlay) Validate() error {
	if err := checkSchema(o.SchemaVersion); err != nil {
		return err
	}

	for name, p := range o.Regions {
		if name == "" {
			return fmt.Errorf("%w: region name cannot be empty", ErrInvalidOverlay)
		}
		if !positive(p.EmissionFactor) {
			return fmt.Errorf("%w: region %q emission_factor must be positive", ErrInvalidOverlay, name)
		}
		if !nonNegative(p.ElectricityPrice) {
			return fmt.Errorf("%w: region %q electricity_price must not be negative", ErrInvalidOverlay, name)
		}
		if !nonNegative(p.Benchmark.EnergyKWh) || !nonNegative(p.Benchmark.CO2Kg) {
			return fmt.Errorf("%w: region %q benchmark must not be negative", ErrInvalidOverlay, name)
		}
	}

	for id, l := range o.Lifecycle {
		if !nonNegative(l.ManufacturingKg) || !nonNegative(l.DisposalKg) {
			return fmt.Errorf("%w: lifecycle %q values must not be negative", ErrInvalidOverlay, id)
		}
	}

	for i, d := range o.Catalog {
		if err := d.toDevice().Validate(); err != nil {
			return fmt.Errorf("%w: catalog entry %d: %w", ErrInvalidOverlay, i, err)
		}
	}

	return nil
}

// Apply returns new tables with the overlay merged over t. Overlay regions,
// lifecycle entries and tips replace entries with the same key; catalog
// entries replace the seed device with the same id or are appended.
func (t *Tables) Apply(o *Overlay) *Tables {
	out := t.clone()
	if o == nil {
		return out
	}

	for name, p := range o.Regions {
		p.Name = name
		if p.Currency == "" {
			p.Currency = out.regions[WorldRegion].Currency
		}
		out.regions[name] = p
	}
	for id, l := range o.Lifecycle {
		out.lifecycle[id] = l
	}
	for _, od := range o.Catalog {
		d := od.toDevice()
		if i := device.IndexOf(out.catalog, d.ID); i >= 0 {
			out.catalog[i] = d
		} else {
			out.catalog = append(out.catalog, d)
		}
	}
	for cat, tips := range o.Tips {
		out.tips[cat] = append([]string(nil), tips...)
	}
	return out
}

func (t *Tables) clone() *Tables {
	out := &Tables{
		regions:   make(map[string]RegionProfile, len(t.regions)),
		lifecycle: make(map[string]LifecycleImpact, len(t.lifecycle)),
		catalog:   device.Clone(t.catalog),
		tips:      make(map[string][]string, len(t.tips)),
	}
	for k, v := range t.regions {
		out.regions[k] = v
	}
	for k, v := range t.lifecycle {
		out.lifecycle[k] = v
	}
	for k, v := range t.tips {
		out.tips[k] = append([]string(nil), v...)
	}
	return out
}

func checkSchema(version string) error {
	if version == "" {
		return fmt.Errorf("%w: schema_version is required", ErrUnsupportedSchema)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

func (d overlayDevice) toDevice() device.Device {
	return device.Device{
		ID:               d.ID,
		Name:             d.Name,
		Category:         d.Category,
		PowerWatts:       d.PowerWatts,
		UsageHoursPerDay: d.UsageHoursPerDay,
	}
}

func positive(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

func nonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
