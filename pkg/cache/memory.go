package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory is an in-process TTL map. When full, expired entries are dropped first and
// then the entry closest to expiry.
type Memory struct {
	mu         sync.Mutex
	items      map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewMemory(maxEntries int) *Memory {
	return &Memory{
		items:      make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return nil, ErrNotCached
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		return nil, ErrNotCached
	}
	return e.payload, nil
}

func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		m.evict()
	}
	m.items[key] = entry{payload: payload, expiresAt: m.now().Add(ttl)}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Purge drops expired entries and returns how many were removed.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purgeLocked()
}

func (m *Memory) purgeLocked() int {
	now := m.now()
	n := 0
	for k, e := range m.items {
		if !now.Before(e.expiresAt) {
			delete(m.items, k)
			n++
		}
	}
	return n
}

func (m *Memory) evict() {
	if m.purgeLocked() > 0 {
		return
	}
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, e := range m.items {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey, oldest = k, e.expiresAt
		}
	}
	delete(m.items, oldestKey)
}
