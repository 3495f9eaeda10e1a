// Package cache provides the in-memory lineage memo cache.
package cache

import (
	"sync"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
)

var _ ports.LineageCache = (*Memory)(nil)

// Memory is a bounded, clearable in-memory cache. Eviction is FIFO: once the
// capacity is reached, the oldest insertion is dropped. Overwrites of an
// existing key keep its original position.
type Memory struct {
	mu       sync.RWMutex
	entries  map[string]domain.LineageResult
	order    []string
	capacity int
}

// NewMemory creates a Memory cache holding at most capacity entries.
// A non-positive capacity selects domain.DefaultCacheCapacity.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = domain.DefaultCacheCapacity
	}
	return &Memory{
		entries:  make(map[string]domain.LineageResult),
		capacity: capacity,
	}
}

// Get returns the cached result for the given key.
func (m *Memory) Get(key string) (domain.LineageResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.entries[key]
	return res, ok
}

// Put stores the result under the given key, evicting the oldest entry when
// the cache is full.
func (m *Memory) Put(key string, result domain.LineageResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; exists {
		m.entries[key] = result
		return
	}

	for len(m.entries) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}

	m.entries[key] = result
	m.order = append(m.order, key)
}

// Clear drops all cached entries.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]domain.LineageResult)
	m.order = nil
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
