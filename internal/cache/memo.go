package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/syncx"
)

// Memo is a process-wide memoizer with per-entry TTLs. Reads are safe under
// concurrency; concurrent misses on the same key are collapsed to a single
// fetch. Fetch errors are never cached.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]memoEntry
	flight  syncx.SingleFlight
}

type memoEntry struct {
	value   interface{}
	fetched time.Time
	ttl     time.Duration
}

// NewMemo constructs an empty memoizer.
func NewMemo() *Memo {
	return &Memo{
		entries: make(map[string]memoEntry),
		flight:  syncx.NewSingleFlight(),
	}
}

// Do returns the cached value for key if it is still fresh, otherwise runs
// fetch and caches its result for ttl. A non-positive ttl disables caching
// for this call.
func (m *Memo) Do(key string, ttl time.Duration, fetch func() (interface{}, error)) (interface{}, error) {
	if value, ok := m.lookup(key); ok {
		return value, nil
	}
	return m.flight.Do(key, func() (interface{}, error) {
		// Another caller may have filled the entry while we waited.
		if value, ok := m.lookup(key); ok {
			return value, nil
		}
		value, err := fetch()
		if err != nil {
			return nil, err
		}
		if ttl > 0 {
			m.store(key, value, ttl)
		}
		return value, nil
	})
}

// Forget drops a cached entry.
func (m *Memo) Forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len reports the number of stored entries, fresh or expired.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memo) lookup(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	if !ok || time.Since(entry.fetched) > entry.ttl {
		return nil, false
	}
	return entry.value, true
}

func (m *Memo) store(key string, value interface{}, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoEntry{value: value, fetched: time.Now(), ttl: ttl}
}

// Fetch is the typed front door to Memo.Do.
func Fetch[V any](m *Memo, key string, ttl time.Duration, fetch func() (V, error)) (V, error) {
	raw, err := m.Do(key, ttl, func() (interface{}, error) {
		return fetch()
	})
	if err != nil {
		var zero V
		return zero, err
	}
	value, ok := raw.(V)
	if !ok {
		var zero V
		return zero, fmt.Errorf("cache: unexpected value type for key %s", key)
	}
	return value, nil
}
