package device

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/rshade/footprint/internal/kvstore"
)

// StoreKey is the key-value store key holding the device list.
const StoreKey = "devices"

// Repository persists the device list in a key-value store.
type Repository struct {
	kv  kvstore.Store
	key string
}

// NewRepository returns a repository writing under StoreKey.
func NewRepository(kv kvstore.Store) *Repository {
	return &Repository{kv: kv, key: StoreKey}
}

// Load returns the stored list, or a copy of seed when nothing has been saved yet.
// A stored value that does not decode as a device list is reported as an error
// wrapping ErrMalformedImport. When ids had to be generated for the stored
// records the repaired list is saved back, so the new ids are stable.
func (r *Repository) Load(seed []Device) ([]Device, error) {
	data, err := r.kv.Get(r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return Clone(seed), nil
		}
		return nil, fmt.Errorf("loading device list: %w", err)
	}
	devices, assigned, err := decodeJSON(bytes.NewReader(data), time.Now())
	if err != nil {
		return nil, fmt.Errorf("loading device list: %w", err)
	}
	if assigned {
		if err := r.Save(devices); err != nil {
			return nil, err
		}
	}
	return devices, nil
}

// Save replaces the stored list.
func (r *Repository) Save(devices []Device) error {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, devices); err != nil {
		return err
	}
	if err := r.kv.Put(r.key, buf.Bytes()); err != nil {
		return fmt.Errorf("saving device list: %w", err)
	}
	return nil
}
