// Package memory implements the action log in memory. Used by tests and
// by no-database mode, where the log lives only for one process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/steveyegge/wbs/internal/dispatch"
)

// Store is an in-memory action log.
type Store struct {
	mu      sync.RWMutex
	records []dispatch.Record
	closed  bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// AppendRecord adds one record to the end of the log.
func (s *Store) AppendRecord(_ context.Context, rec dispatch.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("store is closed")
	}
	s.records = append(s.records, rec)
	return nil
}

// ListRecords returns a copy of the log in append order.
func (s *Store) ListRecords(_ context.Context) ([]dispatch.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("store is closed")
	}
	out := make([]dispatch.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// CountActions returns the number of records in the log.
func (s *Store) CountActions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("store is closed")
	}
	return len(s.records), nil
}

// Close marks the store closed. Further calls fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
