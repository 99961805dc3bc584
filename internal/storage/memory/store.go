// Package memory provides an in-memory fetch record store, used by
// default and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/logofetch/logofetch/internal/logo"
)

// Store keeps fetch records in memory. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []logo.FetchRecord
	latest  map[string]int
}

// New creates an empty Store.
func New() *Store {
	return &Store{latest: make(map[string]int)}
}

// RecordFetch appends a record and indexes it as the company's latest.
func (s *Store) RecordFetch(_ context.Context, rec logo.FetchRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("record id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.latest[rec.Company] = len(s.records) - 1
	return nil
}

// LatestFetch returns the most recent record for a company.
func (s *Store) LatestFetch(_ context.Context, company string) (logo.FetchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.latest[company]
	if !ok {
		return logo.FetchRecord{}, fmt.Errorf("no fetch recorded for %q", company)
	}
	return s.records[i], nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
