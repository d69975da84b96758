// Package store provides the in-memory time-series store for benchmark
// fixing data. The store is the only shared mutable state of the history
// feature; it lives for the process lifetime and is intentionally not
// persisted (a restart resumes with a full backfill).
package store

import (
	"sync"
	"time"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
)

// Entry wraps one symbol's merged series together with the time of the
// last successful fetch, which drives the staleness decision.
type Entry struct {
	Series    entity.FixSeries
	FetchedAt time.Time
}

// SeriesStore is a mutex-guarded map of symbol → Entry. Writers replace
// the whole entry atomically, so a reader observes either the pre- or the
// post-merge snapshot, never a partial one.
type SeriesStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewSeriesStore creates an empty SeriesStore.
func NewSeriesStore() *SeriesStore {
	return &SeriesStore{entries: map[string]Entry{}}
}

// Get returns the entry for symbol and whether one exists.
func (s *SeriesStore) Get(symbol string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[symbol]
	return e, ok
}

// Put replaces the entry for symbol with the given series and fetch time.
func (s *SeriesStore) Put(symbol string, series entity.FixSeries, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[symbol] = Entry{Series: series, FetchedAt: fetchedAt}
}

// Clear drops all entries. Intended for tests.
func (s *SeriesStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]Entry{}
}
