// Package memstore is an in-memory store.Store for tests and for running
// the pipeline without a snapshot database.
package memstore

import (
	"context"
	"sync"

	"github.com/trendlens/topiq/pkg/topiq/freq"
	"github.com/trendlens/topiq/pkg/topiq/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu    sync.RWMutex
	runs  map[string]store.Run
	order []string // insertion order, oldest first
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run, keyed by ID.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		return nil
	}
	if _, exists := s.runs[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.runs[id]; ok {
		return copyRun(r), true, nil
	}
	return store.Run{}, false, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	result := make([]store.Run, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(result) < limit; i-- {
		if r, ok := s.runs[s.order[i]]; ok {
			result = append(result, copyRun(r))
		}
	}
	return result, nil
}

func copyRun(r store.Run) store.Run {
	out := r
	out.Topics = append([]string(nil), r.Topics...)
	out.Keywords = append([]freq.Keyword(nil), r.Keywords...)
	return out
}
