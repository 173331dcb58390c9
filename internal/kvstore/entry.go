package kvstore

import (
	"errors"
	"time"
)

// Common store errors.
var (
	ErrNotFound   = errors.New("key not found")
	ErrExpired    = errors.New("entry expired")
	ErrInvalidKey = errors.New("key cannot be empty")
)

// Store is a key-value byte store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value for key, ErrNotFound if absent, ErrExpired if stale.
	Get(key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Entry is the persisted envelope around a stored value.
type Entry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is zero for entries that never expire.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// newEntry builds an envelope created at now. A ttl <= 0 means no expiry.
func newEntry(key string, value []byte, now time.Time, ttl time.Duration) *Entry {
	e := &Entry{
		Key:       key,
		Value:     append([]byte(nil), value...),
		CreatedAt: now,
	}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}
	return e
}

// IsExpired reports whether the entry has an expiry that lies before now.
func (e *Entry) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
