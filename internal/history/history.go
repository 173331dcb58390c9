// Package history keeps a bounded log of past footprint computations,
// most recent first, and persists it through a key-value store.
package history

import (
	"time"

	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/footprint"
)

// Capacity is the maximum number of entries kept.
const Capacity = 20

// Entry is a snapshot of one computation. Entries are never modified once created.
type Entry struct {
	Date      time.Time `json:"date"`
	Region    string    `json:"region"`
	EnergyKWh float64   `json:"energy"`
	CO2Kg     float64   `json:"co2"`
	NetCO2Kg  float64   `json:"netCO2"`
	// Devices is the device names joined with ", ".
	Devices string `json:"devices"`
}

// NewEntry snapshots result for the given device list at now.
func NewEntry(result footprint.Result, devices []device.Device, now time.Time) Entry {
	return Entry{
		Date:      now.UTC(),
		Region:    result.Region,
		EnergyKWh: result.TotalEnergyKWh,
		CO2Kg:     result.TotalCO2Kg,
		NetCO2Kg:  result.NetCO2Kg,
		Devices:   device.Names(devices),
	}
}

// Append returns a new log with entry first, truncated to Capacity.
// The input log is not modified.
func Append(entry Entry, log []Entry) []Entry {
	n := len(log) + 1
	if n > Capacity {
		n = Capacity
	}
	out := make([]Entry, 0, n)
	out = append(out, entry)
	return append(out, log[:n-1]...)
}
