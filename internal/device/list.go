package device

import (
	"fmt"
	"time"
)

// Every list operation below returns a new slice; the input list is never
// modified, so callers replace their reference on success and keep it on error.

// Clone returns an independent copy of devices. A nil input yields an empty list.
func Clone(devices []Device) []Device {
	out := make([]Device, len(devices))
	copy(out, devices)
	return out
}

// Add commits draft as a new device with a generated id and appends it.
func Add(devices []Device, draft Draft, now time.Time) ([]Device, Device, error) {
	name := ""
	if draft.Name != nil {
		name = *draft.Name
	}
	dev, err := draft.Commit(NewID(name, now))
	if err != nil {
		return devices, Device{}, err
	}

	out := make([]Device, 0, len(devices)+1)
	out = append(out, devices...)
	out = append(out, dev)
	return out, dev, nil
}

// Update overlays draft onto the device at index and re-validates it.
// The device keeps its id.
func Update(devices []Device, index int, draft Draft) ([]Device, error) {
	if err := checkIndex(devices, index); err != nil {
		return devices, err
	}

	current := devices[index]
	dev, err := DraftFrom(current).Overlay(draft).Commit(current.ID)
	if err != nil {
		return devices, err
	}

	out := Clone(devices)
	out[index] = dev
	return out, nil
}

// Remove deletes the device at index.
func Remove(devices []Device, index int) ([]Device, error) {
	if err := checkIndex(devices, index); err != nil {
		return devices, err
	}

	out := make([]Device, 0, len(devices)-1)
	out = append(out, devices[:index]...)
	out = append(out, devices[index+1:]...)
	return out, nil
}

// Reset returns a fresh copy of the seed list, discarding user changes.
func Reset(seed []Device) []Device {
	return Clone(seed)
}

// IndexOf returns the position of the device with the given id, or -1.
func IndexOf(devices []Device, id string) int {
	for i, d := range devices {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func checkIndex(devices []Device, index int) error {
	if index < 0 || index >= len(devices) {
		return fmt.Errorf("%w: %d (list has %d devices)", ErrIndexOutOfRange, index, len(devices))
	}
	return nil
}
