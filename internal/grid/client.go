// Package grid looks up live grid carbon intensity for a region's zone.
//
// Lookups are best effort: every failure surfaces as ErrLookupFailed and
// callers fall back to the static emission factor.
package grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/kvstore"
)

// Defaults applied by NewClient for zero-valued options.
const (
	DefaultEndpoint          = "https://api.co2signal.com"
	DefaultTimeout           = 5 * time.Second
	DefaultRequestsPerMinute = 30
	DefaultCacheSize         = 64
	DefaultCacheTTL          = 15 * time.Minute

	latestPath       = "/v1/latest"
	maxResponseBytes = 1 << 20
	fetchConcurrency = 4
	storeKeyPrefix   = "intensity:"
)

var (
	// ErrLookupFailed indicates the live lookup produced no usable factor.
	ErrLookupFailed = errors.New("live carbon intensity lookup failed")

	// ErrNoGridZone indicates the region has no zone to look up.
	ErrNoGridZone = errors.New("region has no grid zone")
)

// Options configures a Client.
type Options struct {
	Endpoint          string
	Token             string
	Timeout           time.Duration
	RequestsPerMinute int
	CacheSize         int
	CacheTTL          time.Duration
	// Store persists fetched intensities across runs. Optional.
	Store      kvstore.Store
	HTTPClient *http.Client
	// Now is the clock used for cache expiry. Defaults to time.Now.
	Now func() time.Time
}

// Client fetches carbon intensity with an in-memory LRU cache, an optional
// persistent cache and an outbound rate limit.
type Client struct {
	endpoint string
	token    string
	timeout  time.Duration
	ttl      time.Duration
	http     *http.Client
	limiter  *rate.Limiter
	cache    *lru.Cache
	store    kvstore.Store
	now      func() time.Time
}

// cached is an intensity with the time it was fetched.
type cached struct {
	KgPerKWh  float64   `json:"kg_per_kwh"`
	FetchedAt time.Time `json:"fetched_at"`
}

type latestResponse struct {
	Data struct {
		CarbonIntensity *float64 `json:"carbonIntensity"`
	} `json:"data"`
}

// NewClient builds a client, filling zero options with defaults.
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if _, err := url.Parse(opts.Endpoint); err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating intensity cache: %w", err)
	}

	perSecond := rate.Limit(float64(opts.RequestsPerMinute) / float64(time.Minute/time.Second))
	return &Client{
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		token:    opts.Token,
		timeout:  opts.Timeout,
		ttl:      opts.CacheTTL,
		http:     opts.HTTPClient,
		limiter:  rate.NewLimiter(perSecond, 1),
		cache:    cache,
		store:    opts.Store,
		now:      opts.Now,
	}, nil
}

// Intensity returns the current carbon intensity of zone in kg CO2 per kWh.
// Every failure wraps ErrLookupFailed; a blank zone returns ErrNoGridZone.
func (c *Client) Intensity(ctx context.Context, zone string) (float64, error) {
	if strings.TrimSpace(zone) == "" {
		return 0, ErrNoGridZone
	}
	log := zerolog.Ctx(ctx).With().
		Str("component", "grid").
		Str("operation", "intensity").
		Str("zone", zone).
		Logger()

	if v, ok := c.fromCache(zone); ok {
		log.Debug().Float64("kg_per_kwh", v).Msg("intensity cache hit")
		return v, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limit: %w", ErrLookupFailed, err)
	}

	start := c.now()
	v, err := c.fetch(ctx, zone)
	if err != nil {
		log.Debug().Err(err).Msg("live lookup failed")
		return 0, err
	}
	log.Debug().
		Float64("kg_per_kwh", v).
		Dur("duration_ms", c.now().Sub(start)).
		Msg("live lookup succeeded")

	c.remember(ctx, zone, v)
	return v, nil
}

// FetchMany looks up several zones concurrently. Zones that fail are left
// out of the returned map.
func (c *Client) FetchMany(ctx context.Context, zones []string) map[string]float64 {
	var (
		mu  sync.Mutex
		out = make(map[string]float64, len(zones))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, zone := range zones {
		if zone == "" {
			continue
		}
		zone := zone
		g.Go(func() error {
			v, err := c.Intensity(gctx, zone)
			if err != nil {
				zerolog.Ctx(ctx).Warn().
					Str("component", "grid").
					Str("zone", zone).
					Err(err).
					Msg("skipping zone")
				return nil
			}
			mu.Lock()
			out[zone] = v
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (c *Client) fetch(ctx context.Context, zone string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.endpoint + latestPath + "?" + url.Values{"countryCode": {zone}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: building request: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("auth-token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: decoding response: %w", ErrLookupFailed, err)
	}
	if body.Data.CarbonIntensity == nil {
		return 0, fmt.Errorf("%w: response has no carbonIntensity", ErrLookupFailed)
	}

	kg, err := greenops.NormalizeToKg(*body.Data.CarbonIntensity, "g")
	if err != nil || kg <= 0 {
		return 0, fmt.Errorf("%w: unusable intensity %v", ErrLookupFailed, *body.Data.CarbonIntensity)
	}
	return kg, nil
}

func (c *Client) fromCache(zone string) (float64, bool) {
	if v, ok := c.cache.Get(zone); ok {
		entry, _ := v.(cached)
		if c.fresh(entry) {
			return entry.KgPerKWh, true
		}
		c.cache.Remove(zone)
	}

	if c.store == nil {
		return 0, false
	}
	data, err := c.store.Get(storeKeyPrefix + zone)
	if err != nil {
		return 0, false
	}
	var entry cached
	if err := json.Unmarshal(data, &entry); err != nil || !c.fresh(entry) {
		return 0, false
	}
	c.cache.Add(zone, entry)
	return entry.KgPerKWh, true
}

func (c *Client) remember(ctx context.Context, zone string, v float64) {
	entry := cached{KgPerKWh: v, FetchedAt: c.now()}
	c.cache.Add(zone, entry)

	if c.store == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err == nil {
		err = c.store.Put(storeKeyPrefix+zone, data)
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Str("component", "grid").Err(err).Msg("failed to persist intensity")
	}
}

func (c *Client) fresh(e cached) bool {
	return e.KgPerKWh > 0 && c.now().Sub(e.FetchedAt) < c.ttl
}
