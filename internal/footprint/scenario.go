package footprint

import (
	"fmt"

	"github.com/rshade/footprint/internal/device"
)

// EvaluateScenario computes baseline and a copy of baseline with the device at
// index replaced by hypothetical, using identical params for both. The
// baseline slice is never modified.
//
// An index outside baseline, or a hypothetical device that fails validation,
// returns an error wrapping ErrInvalidArgument.
func (c *Calculator) EvaluateScenario(
	baseline []device.Device,
	index int,
	hypothetical device.Device,
	p Params,
) (Scenario, error) {
	if index < 0 || index >= len(baseline) {
		return Scenario{}, fmt.Errorf("%w: scenario index %d outside device list of length %d",
			ErrInvalidArgument, index, len(baseline))
	}
	if err := hypothetical.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("%w: hypothetical device: %w", ErrInvalidArgument, err)
	}

	modified := device.Clone(baseline)
	modified[index] = hypothetical

	base := c.Compute(baseline, p)
	next := c.Compute(modified, p)

	return Scenario{
		Index:        index,
		Original:     baseline[index],
		Hypothetical: hypothetical,
		Baseline:     base,
		Result:       next,
		EnergyDelta:  next.TotalEnergyKWh - base.TotalEnergyKWh,
		CO2Delta:     next.TotalCO2Kg - base.TotalCO2Kg,
		CostDelta:    next.TotalCost - base.TotalCost,
	}, nil
}

// SwapForCatalog returns d changed to the catalog entry catalogID: name,
// category and power come from the catalog while id and usage are kept.
func (c *Calculator) SwapForCatalog(d device.Device, catalogID string) (device.Device, error) {
	entry, ok := c.tables.CatalogDevice(catalogID)
	if !ok {
		return d, fmt.Errorf("%w: unknown catalog device %q", ErrInvalidArgument, catalogID)
	}
	d.Name = entry.Name
	d.Category = entry.Category
	d.PowerWatts = entry.PowerWatts
	return d, nil
}
