package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/device"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/grid"
	"github.com/rshade/footprint/internal/history"
	"github.com/rshade/footprint/internal/i18n"
	"github.com/rshade/footprint/internal/kvstore"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/refdata"
)

// session wires the stores and services one command invocation uses. It is
// built once per command and passed down.
type session struct {
	cfg     *config.Config
	tables  *refdata.Tables
	calc    *footprint.Calculator
	devices *device.Repository
	history *history.Repository
	grid    *grid.Client
	tracker *grid.Tracker
	cache   *kvstore.FileStore
	printer *i18n.Printer
	now     func() time.Time

	region    string
	renewable float64
	live      bool
	format    string
}

// newSession loads config, reference tables and stores, then applies the
// global flags.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.GetGlobalConfig()

	tables := refdata.Default()
	if cfg.ReferenceFile != "" {
		overlay, err := refdata.LoadOverlayFile(cfg.ReferenceFile)
		if err != nil {
			return nil, fmt.Errorf("loading reference overlay: %w", err)
		}
		tables = tables.Apply(overlay)
	}

	dir, err := cfg.StorageDir()
	if err != nil {
		return nil, err
	}
	store, err := kvstore.NewFileStore(dir, 0)
	if err != nil {
		return nil, fmt.Errorf("opening data store: %w", err)
	}

	s := &session{
		cfg:       cfg,
		tables:    tables,
		calc:      footprint.NewCalculator(tables),
		devices:   device.NewRepository(store),
		history:   history.NewRepository(store),
		now:       time.Now,
		region:    cfg.Region,
		renewable: cfg.RenewableKWh,
		live:      cfg.Live.Enabled,
		format:    config.GetDefaultOutputFormat(),
	}

	flags := cmd.Flags()
	lang := cfg.Language
	if flags.Changed(flagLang) {
		lang, _ = flags.GetString(flagLang)
	}
	tag, err := i18n.Parse(lang)
	if err != nil {
		return nil, err
	}
	s.printer = i18n.NewPrinter(tag)

	if flags.Changed(flagRegion) {
		s.region, _ = flags.GetString(flagRegion)
	}
	if flags.Changed(flagRenewable) {
		s.renewable, _ = flags.GetFloat64(flagRenewable)
	}
	if flags.Changed(flagLive) {
		s.live, _ = flags.GetBool(flagLive)
	}
	if flags.Changed(flagOutput) {
		s.format, _ = flags.GetString(flagOutput)
	}
	s.format = strings.ToLower(s.format)
	if s.format != config.FormatTable && s.format != config.FormatJSON {
		return nil, fmt.Errorf("unsupported output format %q: use table or json", s.format)
	}
	if s.renewable < 0 {
		return nil, fmt.Errorf("renewable must not be negative, got %v", s.renewable)
	}

	if s.live {
		var cacheStore kvstore.Store
		ttl := time.Duration(cfg.Live.CacheTTLSeconds) * time.Second
		fileCache, cacheErr := kvstore.NewFileStore(filepath.Join(dir, "cache"), ttl)
		if cacheErr != nil {
			logging.FromContext(cmd.Context()).Warn().
				Str("component", "cli").
				Err(cacheErr).
				Msg("intensity cache unavailable, caching in memory for this run")
			cacheStore = kvstore.NewMemoryStore(ttl)
		} else {
			s.cache = fileCache
			cacheStore = fileCache
		}
		client, clientErr := grid.NewClient(grid.Options{
			Endpoint:          cfg.Live.Endpoint,
			Token:             cfg.Live.Token,
			Timeout:           time.Duration(cfg.Live.TimeoutSeconds) * time.Second,
			RequestsPerMinute: cfg.Live.RequestsPerMinute,
			CacheSize:         cfg.Live.CacheSize,
			CacheTTL:          ttl,
			Store:             cacheStore,
		})
		if clientErr != nil {
			return nil, clientErr
		}
		s.grid = client
		s.tracker = grid.NewTracker(client)
	}

	return s, nil
}

// loadDevices returns the saved device list, seeded from the catalog on first use.
func (s *session) loadDevices() ([]device.Device, error) {
	return s.devices.Load(s.tables.Catalog())
}

// params resolves the computation parameters, waiting for the live lookup
// when it is enabled. A failed lookup leaves LiveFactor zero.
func (s *session) params(ctx context.Context) footprint.Params {
	p := footprint.Params{Region: s.region, RenewableKWh: s.renewable}
	if s.tracker == nil {
		return p
	}

	profile, found := s.tables.LookupRegion(s.region)
	if !found {
		logging.FromContext(ctx).Debug().Str("component", "cli").Str("region", s.region).
			Msg("unknown region, using World")
	}

	done := s.tracker.Start(ctx, profile.Name, profile.GridZone)
	select {
	case <-done:
	case <-ctx.Done():
		s.tracker.Stop()
		<-done
	}
	if v, ok := s.tracker.Override(); ok && s.tracker.Region() == profile.Name {
		p.LiveFactor = v
	}
	s.sweepCache(ctx)
	return p
}

// sweepCache drops expired intensity entries from the on-disk cache.
func (s *session) sweepCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	removed, err := s.cache.CleanupExpired()
	log := logging.FromContext(ctx)
	if err != nil {
		log.Debug().Str("component", "cli").Err(err).Msg("intensity cache cleanup failed")
		return
	}
	if removed > 0 {
		log.Debug().Str("component", "cli").Int("removed", removed).Msg("expired intensity entries removed")
	}
}

// T translates key for the selected output language.
func (s *session) T(key string, args ...any) string {
	return s.printer.T(key, args...)
}

// compute loads devices and computes the current footprint.
func (s *session) compute(ctx context.Context) ([]device.Device, footprint.Result, error) {
	devices, err := s.loadDevices()
	if err != nil {
		return nil, footprint.Result{}, err
	}
	res := s.calc.Compute(devices, s.params(ctx))
	logging.FromContext(ctx).Debug().
		Str("component", "cli").
		Str("operation", "compute").
		Str("region", res.Region).
		Int("devices", len(res.Devices)).
		Int("excluded", len(res.Excluded)).
		Float64("total_kwh", res.TotalEnergyKWh).
		Str("factor_source", string(res.FactorSource)).
		Msg("footprint computed")
	return devices, res, nil
}

// resolveDevice finds a device by 1-based position or by id.
func resolveDevice(devices []device.Device, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if i := device.IndexOf(devices, ref); i >= 0 {
		return i, nil
	}
	var pos int
	if _, err := fmt.Sscanf(ref, "%d", &pos); err == nil && fmt.Sprint(pos) == ref {
		if pos < 1 || pos > len(devices) {
			return -1, fmt.Errorf("%w: position %d, list has %d devices",
				footprint.ErrInvalidArgument, pos, len(devices))
		}
		return pos - 1, nil
	}
	return -1, fmt.Errorf("%w: no device with id %q", footprint.ErrInvalidArgument, ref)
}
