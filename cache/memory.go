package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/git-pkgs/jdks/internal/core"
)

// MemoryStore is a process-local KnownStore.
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[core.Distribution]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[core.Distribution]map[string]struct{})}
}

func (m *MemoryStore) Contains(_ context.Context, dist core.Distribution, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[dist][key]
	return ok, nil
}

func (m *MemoryStore) Add(_ context.Context, pkgs ...*core.Package) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for dist, keys := range groupByDistribution(pkgs) {
		set, ok := m.keys[dist]
		if !ok {
			set = make(map[string]struct{}, len(keys))
			m.keys[dist] = set
		}
		for _, k := range keys {
			set[k] = struct{}{}
		}
	}
	return nil
}

// Keys returns the known keys of dist in sorted order.
func (m *MemoryStore) Keys(_ context.Context, dist core.Distribution) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.keys[dist]))
	for k := range m.keys[dist] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
