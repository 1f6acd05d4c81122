package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Ensure RecordSource implements the interface.
var _ driven.RecordSource = (*RecordSource)(nil)

// RecordSource is an in-memory implementation of driven.RecordSource.
// It is used in tests and for embedding fixed record sets.
type RecordSource struct {
	mu      sync.Mutex
	records []domain.Record
	err     error
	calls   int
}

// NewRecordSource creates a source that returns records.
func NewRecordSource(records []domain.Record) *RecordSource {
	return &RecordSource{records: records}
}

// NewFailingSource creates a source whose Load always fails with err.
func NewFailingSource(err error) *RecordSource {
	return &RecordSource{err: err}
}

// Load returns a copy of the records.
func (s *RecordSource) Load(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Ref returns ":memory:".
func (s *RecordSource) Ref() string {
	return ":memory:"
}

// Calls returns how many times Load was called.
func (s *RecordSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
