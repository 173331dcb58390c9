package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/footprint/internal/kvstore"
)

// StoreKey is the key-value store key holding the history log.
const StoreKey = "footprintHistory"

// ErrCorrupted indicates the stored history is not a JSON list of entries.
var ErrCorrupted = errors.New("history log is corrupted")

// Repository persists the history log. It is the only durable storage the
// history log touches.
type Repository struct {
	kv kvstore.Store
}

// NewRepository returns a repository over kv.
func NewRepository(kv kvstore.Store) *Repository {
	return &Repository{kv: kv}
}

// Load returns the stored log, most recent first. A missing key yields an
// empty log. Logs longer than Capacity are truncated.
func (r *Repository) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := zerolog.Ctx(ctx).With().Str("component", "history").Str("operation", "load").Logger()

	data, err := r.kv.Get(StoreKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) || errors.Is(err, kvstore.ErrExpired) {
			log.Debug().Msg("no stored history")
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("loading history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	if len(entries) > Capacity {
		log.Warn().Int("entries", len(entries)).Int("capacity", Capacity).Msg("truncating stored history")
		entries = entries[:Capacity]
	}
	log.Debug().Int("entries", len(entries)).Msg("history loaded")
	return entries, nil
}

// Save replaces the stored log.
func (r *Repository) Save(ctx context.Context, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := r.kv.Put(StoreKey, data); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("component", "history").
		Str("operation", "save").
		Int("entries", len(entries)).
		Msg("history saved")
	return nil
}

// Record loads the log, prepends entry and saves the result.
func (r *Repository) Record(ctx context.Context, entry Entry) ([]Entry, error) {
	current, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	next := Append(entry, current)
	if err := r.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
