package service

import (
	"sync"

	"golang-crypto-sentiment/internal/entity"
)

// ResultsStore holds the latest published snapshot of per-coin aggregates.
// Publish replaces the snapshot wholesale; readers always get a consistent
// copy from a single aggregation cycle, never a mix of two.
type ResultsStore struct {
	mu       sync.RWMutex
	snapshot entity.Snapshot
	version  uint64
}

// NewResultsStore creates an empty ResultsStore.
func NewResultsStore() *ResultsStore {
	return &ResultsStore{snapshot: entity.Snapshot{}}
}

// Publish replaces the current snapshot. The snapshot is cloned so later
// mutation by the caller cannot leak into published state.
func (s *ResultsStore) Publish(snapshot entity.Snapshot) {
	cloned := snapshot.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = cloned
	s.version++
}

// Read returns a defensive copy of the current snapshot.
func (s *ResultsStore) Read() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Get returns the aggregate for a single coin. The second return value is
// false when the coin was not part of the last cycle.
func (s *ResultsStore) Get(coin string) (entity.CoinAggregate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agg, ok := s.snapshot[coin]
	if !ok {
		return entity.CoinAggregate{}, false
	}
	if agg.AverageStrong != nil {
		strong := *agg.AverageStrong
		agg.AverageStrong = &strong
	}
	return agg, true
}

// Version returns the number of snapshots published so far.
func (s *ResultsStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
