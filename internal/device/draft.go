package device

import (
	"fmt"
	"strings"
)

// Draft is a partially filled device record, the state of an add/edit form.
// Nil fields are unset. A Draft is promoted to a Device only through Commit,
// so invalid partial state never reaches a device list.
type Draft struct {
	Name             *string
	Category         *string
	PowerWatts       *float64
	UsageHoursPerDay *float64
}

// DraftFrom returns a fully populated draft holding d's editable fields.
func DraftFrom(d Device) Draft {
	name, category := d.Name, d.Category
	power, usage := d.PowerWatts, d.UsageHoursPerDay
	return Draft{
		Name:             &name,
		Category:         &category,
		PowerWatts:       &power,
		UsageHoursPerDay: &usage,
	}
}

// Overlay returns a copy of d with every field that is set in o replacing d's value.
func (d Draft) Overlay(o Draft) Draft {
	if o.Name != nil {
		d.Name = o.Name
	}
	if o.Category != nil {
		d.Category = o.Category
	}
	if o.PowerWatts != nil {
		d.PowerWatts = o.PowerWatts
	}
	if o.UsageHoursPerDay != nil {
		d.UsageHoursPerDay = o.UsageHoursPerDay
	}
	return d
}

// Missing lists the required fields that are unset or blank, in form order.
func (d Draft) Missing() []string {
	var missing []string
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		missing = append(missing, "name")
	}
	if d.Category == nil || strings.TrimSpace(*d.Category) == "" {
		missing = append(missing, "category")
	}
	if d.PowerWatts == nil {
		missing = append(missing, "powerWatts")
	}
	if d.UsageHoursPerDay == nil {
		missing = append(missing, "usageHoursPerDay")
	}
	return missing
}

// Commit validates the draft against the full Device shape and returns the
// device with the given id. Any missing field or invalid value yields an error
// wrapping ErrInvalidInput.
func (d Draft) Commit(id string) (Device, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return Device{}, fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	dev := Device{
		ID:               id,
		Name:             strings.TrimSpace(*d.Name),
		Category:         strings.TrimSpace(*d.Category),
		PowerWatts:       *d.PowerWatts,
		UsageHoursPerDay: *d.UsageHoursPerDay,
	}
	if err := dev.Validate(); err != nil {
		return Device{}, err
	}
	return dev, nil
}
