// Package cache remembers which packages have already been seen and tells
// interested parties about the ones that have not.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultPrefix  = "jdks"
	DefaultChannel = "jdks:packages"
)

// KnownStore persists package keys per distribution.
type KnownStore interface {
	Contains(ctx context.Context, dist core.Distribution, key string) (bool, error)
	Add(ctx context.Context, pkgs ...*core.Package) error
	Keys(ctx context.Context, dist core.Distribution) ([]string, error)
	Close() error
}

// Config selects the store and notifier backends.
type Config struct {
	RedisURL string
	Prefix   string
	Channel  string
}

// Snapshot loads the known keys of dist into a set usable with
// core.OnlyNew.
func Snapshot(ctx context.Context, s KnownStore, dist core.Distribution) (core.KeySet, error) {
	keys, err := s.Keys(ctx, dist)
	if err != nil {
		return nil, fmt.Errorf("loading known keys for %s: %w", dist, err)
	}
	set := make(core.KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}

// Open returns a Redis-backed store and notifier when cfg names a
// reachable server, and in-memory ones otherwise.
func Open(ctx context.Context, cfg Config) (KnownStore, Notifier) {
	if cfg.RedisURL == "" {
		slog.Debug("using memory store")
		return NewMemoryStore(), LogNotifier{}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := NewRedisStore(ctx, cfg)
	if err != nil {
		slog.Warn("redis unavailable, using memory store", "error", err)
		return NewMemoryStore(), LogNotifier{}
	}
	slog.Debug("using redis store", "prefix", store.prefix)
	return store, Notifiers{LogNotifier{}, store.Notifier(cfg.Channel)}
}

func groupByDistribution(pkgs []*core.Package) map[core.Distribution][]string {
	groups := make(map[core.Distribution][]string)
	for _, p := range pkgs {
		if p == nil {
			continue
		}
		groups[p.Distribution] = append(groups[p.Distribution], p.Key())
	}
	return groups
}
