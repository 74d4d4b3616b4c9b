package core

import (
	"fmt"
	"sort"
	"sync"
)

// Adapter is the interface implemented by every distribution source.
type Adapter interface {
	// Distribution returns the identifier of the vendor build.
	Distribution() Distribution

	// Locator returns the query URL for f, or "" when the vendor does not
	// serve the requested feature version at all.
	Locator(f Filter) string

	// Parse turns one unit of vendor payload into canonical records.
	// Problems with individual entries are logged and skipped.
	Parse(p Payload, f Filter) []*Package
}

// Factory creates an adapter for a given base URL and schedule.
type Factory func(baseURL string, schedule *Schedule) Adapter

var (
	factories = make(map[Distribution]Factory)
	defaults  = make(map[Distribution]string)
	mu        sync.RWMutex
)

// Register adds an adapter factory to the global registry.
// defaultURL is the vendor endpoint used when New is given no base URL.
func Register(d Distribution, defaultURL string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[d] = factory
	defaults[d] = defaultURL
}

// New creates an adapter for the given distribution.
// If baseURL is empty, the default vendor URL is used.
// If schedule is nil, DefaultSchedule() is used.
func New(d Distribution, baseURL string, schedule *Schedule) (Adapter, error) {
	mu.RLock()
	factory, ok := factories[d]
	defaultURL := defaults[d]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistribution, d)
	}
	if baseURL == "" {
		baseURL = defaultURL
	}
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return factory(baseURL, schedule), nil
}

// SupportedDistributions returns all registered distributions, sorted.
func SupportedDistributions() []Distribution {
	mu.RLock()
	defer mu.RUnlock()

	ds := make([]Distribution, 0, len(factories))
	for d := range factories {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return ds
}

// DefaultURL returns the default vendor URL for a distribution.
func DefaultURL(d Distribution) string {
	mu.RLock()
	defer mu.RUnlock()
	return defaults[d]
}
