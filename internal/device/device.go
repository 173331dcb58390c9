// Package device models household appliances and the operations the device
// manager performs on a list of them: drafting and validating edits, adding,
// updating, removing, resetting to the catalog seed, and JSON/CSV import and
// export.
package device

import (
	"fmt"
	"math"
	"strings"
)

// Physical constants used to annualise a device's draw.
const (
	// MaxUsageHoursPerDay is the upper bound for daily usage.
	MaxUsageHoursPerDay = 24.0

	// DaysPerYear is the number of days used to annualise daily usage.
	DaysPerYear = 365.0

	// WattsPerKilowatt converts watt-hours to kilowatt-hours.
	WattsPerKilowatt = 1000.0
)

// Well-known categories offered by the device manager. Category is an open set;
// anything else a user types is accepted as-is.
const (
	CategoryComputing     = "Computing"
	CategoryAppliance     = "Appliance"
	CategoryLighting      = "Lighting"
	CategoryEntertainment = "Entertainment"
	CategoryNetworking    = "Networking"
	CategoryMobile        = "Mobile"
	CategoryOther         = "Other"
)

// Device is one physical appliance tracked by the user.
type Device struct {
	// ID is unique within a list. Catalog seeds use fixed ids ("laptop"),
	// user-added devices get a generated one (see NewID).
	ID string `json:"id"`

	// Name is the display label.
	Name string `json:"name"`

	// Category groups devices for aggregation and tips.
	Category string `json:"category"`

	// PowerWatts is the instantaneous draw in watts.
	PowerWatts float64 `json:"powerWatts"`

	// UsageHoursPerDay is the average daily usage in hours.
	UsageHoursPerDay float64 `json:"usageHoursPerDay"`
}

// AnnualKWh returns the device's yearly consumption in kWh, unrounded.
func (d Device) AnnualKWh() float64 {
	return d.PowerWatts * d.UsageHoursPerDay * DaysPerYear / WattsPerKilowatt
}

// DailyWattHours returns power × hours, the key used to rank devices by consumption.
func (d Device) DailyWattHours() float64 {
	return d.PowerWatts * d.UsageHoursPerDay
}

// Countable reports whether the device satisfies the power and usage
// invariants required to be included in totals.
func (d Device) Countable() bool {
	return isFinite(d.PowerWatts) && d.PowerWatts > 0 &&
		isFinite(d.UsageHoursPerDay) && d.UsageHoursPerDay >= 0 &&
		d.UsageHoursPerDay <= MaxUsageHoursPerDay
}

// Validate checks every field of a committed device.
// Returns an error wrapping ErrInvalidInput describing the first violation.
func (d Device) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if !isFinite(d.PowerWatts) || d.PowerWatts <= 0 {
		return fmt.Errorf("%w: power must be a positive number of watts, got %v", ErrInvalidInput, d.PowerWatts)
	}
	if !isFinite(d.UsageHoursPerDay) || d.UsageHoursPerDay < 0 || d.UsageHoursPerDay > MaxUsageHoursPerDay {
		return fmt.Errorf("%w: usage must be between 0 and %g hours per day, got %v",
			ErrInvalidInput, MaxUsageHoursPerDay, d.UsageHoursPerDay)
	}
	return nil
}

// Names returns the device names joined with ", " in list order.
func Names(devices []Device) string {
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.Name
	}
	return strings.Join(names, ", ")
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
