package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
	"github.com/custodia-labs/promptvault/internal/logger"
)

// RecordStore holds the full dataset after load. It is write-once: the
// first Load call populates it and every index assigned then is permanent.
// Until a load succeeds the store reads as empty.
type RecordStore struct {
	mu        sync.RWMutex
	records   []domain.Record
	attempted bool
	loaded    bool
	ref       string
}

// NewRecordStore creates an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Load fetches and parses the data file from src. Only the first call does
// any work; later calls return domain.ErrAlreadyLoaded. On failure the store
// stays empty and the error is logged and returned.
func (s *RecordStore) Load(ctx context.Context, src driven.RecordSource) error {
	s.mu.Lock()
	if s.attempted {
		s.mu.Unlock()
		return domain.ErrAlreadyLoaded
	}
	s.attempted = true
	s.ref = src.Ref()
	s.mu.Unlock()

	logger.Section("Load")
	logger.Debug("source: %s", src.Ref())

	records, err := src.Load(ctx)
	if err != nil {
		logger.Error("failed to load prompts from %s: %v", src.Ref(), err)
		return fmt.Errorf("load records: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()

	logger.Info("loaded %d records", len(records))
	return nil
}

// Loaded reports whether a load has completed successfully.
func (s *RecordStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of records.
func (s *RecordStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record at a global index.
func (s *RecordStore) Get(index int) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return domain.Record{}, false
	}
	return s.records[index], true
}

// Records returns the records in store order. The slice is shared and must
// not be modified.
func (s *RecordStore) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Ref returns the path or URL the store was loaded from.
func (s *RecordStore) Ref() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ref
}
