package grid

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Lookup is the source a Tracker queries. *Client implements it.
type Lookup interface {
	Intensity(ctx context.Context, zone string) (float64, error)
}

// Tracker holds the live factor for the currently selected region. Only the
// most recent lookup may set the factor: a lookup that completes after the
// region changed, or after a newer lookup started, is discarded.
type Tracker struct {
	lookup Lookup

	mu         sync.Mutex
	region     string
	generation uint64
	cancel     context.CancelFunc
	factor     float64
	hasFactor  bool
}

// NewTracker returns a tracker querying lookup.
func NewTracker(lookup Lookup) *Tracker {
	return &Tracker{lookup: lookup}
}

// Start selects region and begins a lookup for zone, cancelling any lookup
// still in flight. The previous factor is cleared immediately. The returned
// channel is closed once the lookup has finished, whether or not its result
// was applied. A blank zone performs no lookup.
func (t *Tracker) Start(ctx context.Context, region, zone string) <-chan struct{} {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.generation++
	gen := t.generation
	t.region = region
	t.factor, t.hasFactor = 0, false

	done := make(chan struct{})
	if zone == "" || t.lookup == nil {
		t.mu.Unlock()
		close(done)
		return done
	}

	lookupCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		v, err := t.lookup.Intensity(lookupCtx, zone)

		t.mu.Lock()
		defer t.mu.Unlock()
		log := zerolog.Ctx(ctx).With().
			Str("component", "grid").
			Str("operation", "track").
			Str("region", region).
			Logger()

		switch {
		case gen != t.generation || t.region != region:
			log.Debug().Msg("discarding stale live factor")
		case err != nil:
			log.Debug().Err(err).Msg("live factor unavailable, using static factor")
		default:
			t.factor, t.hasFactor = v, true
			t.cancel = nil
			log.Debug().Float64("kg_per_kwh", v).Msg("live factor applied")
		}
	}()
	return done
}

// Override returns the live factor for the current region, if one arrived.
func (t *Tracker) Override() (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.factor, t.hasFactor
}

// Region returns the currently selected region.
func (t *Tracker) Region() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.region
}

// Stop cancels any lookup in flight.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
