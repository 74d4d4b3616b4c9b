// Package discover runs every selected distribution adapter against its
// upstream and reports the packages that were not seen on earlier runs.
package discover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/git-pkgs/jdks/cache"
	"github.com/git-pkgs/jdks/internal/core"
)

const defaultConcurrency = 8

// ErrNoLocator is recorded when an adapter has no endpoint for the filter.
var ErrNoLocator = errors.New("no locator for filter")

// Fetcher retrieves the payload behind a locator. fetch.Fetcher and
// fetch.CircuitBreakerFetcher satisfy it.
type Fetcher interface {
	Payload(ctx context.Context, url string) (core.Payload, error)
}

// Result is the outcome for one distribution.
type Result struct {
	Distribution core.Distribution
	URL          string
	Packages     []*core.Package // everything the adapter admitted
	New          []*core.Package // the subset not previously known
	Duration     time.Duration
	Err          error
}

// Skipped reports whether the distribution was not queried at all.
func (r Result) Skipped() bool {
	return errors.Is(r.Err, ErrNoLocator)
}

// Discoverer wires adapters to a fetcher, a known-package store and a
// notifier.
type Discoverer struct {
	fetcher       Fetcher
	store         cache.KnownStore
	notifier      cache.Notifier
	schedule      *core.Schedule
	baseURLs      map[core.Distribution]string
	distributions []core.Distribution
	concurrency   int
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithStore sets the known-package store. Without one every package is new.
func WithStore(s cache.KnownStore) Option {
	return func(d *Discoverer) {
		d.store = s
	}
}

func WithNotifier(n cache.Notifier) Option {
	return func(d *Discoverer) {
		d.notifier = n
	}
}

func WithSchedule(s *core.Schedule) Option {
	return func(d *Discoverer) {
		d.schedule = s
	}
}

// WithBaseURL points one distribution at a mirror or test server.
func WithBaseURL(dist core.Distribution, baseURL string) Option {
	return func(d *Discoverer) {
		d.baseURLs[dist] = baseURL
	}
}

// WithDistributions restricts the run. The default is every registered
// distribution.
func WithDistributions(dists ...core.Distribution) Option {
	return func(d *Discoverer) {
		d.distributions = dists
	}
}

func WithConcurrency(n int) Option {
	return func(d *Discoverer) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

func New(f Fetcher, opts ...Option) *Discoverer {
	d := &Discoverer{
		fetcher:     f,
		schedule:    core.DefaultSchedule(),
		baseURLs:    make(map[core.Distribution]string),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run queries each distribution concurrently. Results are ordered like the
// distribution list, and each result keeps its adapter's package order.
// Per-distribution failures are reported in Result.Err; the returned error
// is only set when ctx ends before every distribution finished.
func (d *Discoverer) Run(ctx context.Context, f core.Filter) ([]Result, error) {
	dists := d.distributions
	if len(dists) == 0 {
		dists = core.SupportedDistributions()
	}

	results := make([]Result, len(dists))
	sem := make(chan struct{}, d.concurrency)
	var wg sync.WaitGroup

	for i, dist := range dists {
		results[i] = Result{Distribution: dist}
		wg.Add(1)
		go func(i int, dist core.Distribution) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			results[i] = d.discover(ctx, dist, f)
		}(i, dist)
	}

	wg.Wait()
	return results, ctx.Err()
}

func (d *Discoverer) discover(ctx context.Context, dist core.Distribution, f core.Filter) (r Result) {
	start := time.Now()
	r.Distribution = dist
	defer func() { r.Duration = time.Since(start) }()

	adapter, err := core.New(dist, d.baseURLs[dist], d.schedule)
	if err != nil {
		r.Err = err
		return r
	}

	r.URL = adapter.Locator(f)
	if r.URL == "" {
		slog.Debug("no locator", "distribution", dist)
		r.Err = fmt.Errorf("%s: %w", dist, ErrNoLocator)
		return r
	}

	payload, err := d.fetcher.Payload(ctx, r.URL)
	if err != nil {
		slog.Warn("fetch failed", "distribution", dist, "url", r.URL, "error", err)
		r.Err = err
		return r
	}

	r.Packages = adapter.Parse(payload, f)
	r.New = r.Packages

	if d.store != nil {
		known, err := cache.Snapshot(ctx, d.store, dist)
		if err != nil {
			r.Err = err
			return r
		}
		r.New = core.OnlyNew(r.Packages, known)
		if err := d.store.Add(ctx, r.New...); err != nil {
			r.Err = fmt.Errorf("storing %s packages: %w", dist, err)
			return r
		}
	}

	if d.notifier != nil && len(r.New) > 0 {
		if err := d.notifier.Notify(ctx, r.New); err != nil {
			slog.Warn("notify failed", "distribution", dist, "error", err)
			r.Err = err
		}
	}

	slog.Debug("discovered", "distribution", dist, "packages", len(r.Packages), "new", len(r.New))
	return r
}

// NewPackages flattens the new packages of every result in order.
func NewPackages(results []Result) []*core.Package {
	var out []*core.Package
	for _, r := range results {
		out = append(out, r.New...)
	}
	return out
}
