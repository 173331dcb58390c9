package device

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVHeader is the header row written by EncodeCSV.
//
//nolint:gochecknoglobals // Fixed export layout.
var CSVHeader = []string{"Name", "Category", "Power (W)", "Usage (hrs/day)"}

// EncodeJSON writes devices as an indented JSON array.
func EncodeJSON(w io.Writer, devices []Device) error {
	if devices == nil {
		devices = []Device{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(devices); err != nil {
		return fmt.Errorf("encoding devices JSON: %w", err)
	}
	return nil
}

// DecodeJSON parses an exported device list.
//
// The payload must be a JSON array whose elements are objects; anything else
// returns an error wrapping ErrMalformedImport and no devices. Records without
// an id, or repeating an id already seen earlier in the payload, get one
// generated from their name and now, so ids stay unique within the list.
func DecodeJSON(r io.Reader, now time.Time) ([]Device, error) {
	devices, _, err := decodeJSON(r, now)
	return devices, err
}

// decodeJSON is DecodeJSON that also reports whether any id was generated.
func decodeJSON(r io.Reader, now time.Time) ([]Device, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("reading device import: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, fmt.Errorf("%w: payload is not a list", ErrMalformedImport)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}

	devices := make([]Device, 0, len(raw))
	assigned := false
	seen := make(map[string]bool, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, false, fmt.Errorf("%w: element %d is not an object", ErrMalformedImport, i)
		}
		var d Device
		if err := json.Unmarshal(item, &d); err != nil {
			return nil, false, fmt.Errorf("%w: element %d: %w", ErrMalformedImport, i, err)
		}
		if d.ID == "" || seen[d.ID] {
			d.ID = NewID(d.Name, now)
			assigned = true
		}
		seen[d.ID] = true
		devices = append(devices, d)
	}

	return devices, assigned, nil
}

// EncodeCSV writes the device list with CSVHeader. Fields containing commas,
// quotes or newlines are quoted per RFC 4180.
func EncodeCSV(w io.Writer, devices []Device) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, d := range devices {
		row := []string{
			d.Name,
			d.Category,
			strconv.FormatFloat(d.PowerWatts, 'f', -1, 64),
			strconv.FormatFloat(d.UsageHoursPerDay, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", d.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
