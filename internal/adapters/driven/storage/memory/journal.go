// Package memory provides in-memory implementations of driven port
// interfaces, used in tests and for workers that need no persistence.
package memory

import (
	"context"
	"sync"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.TaskJournal = (*Journal)(nil)

// Journal is an in-memory implementation of driven.TaskJournal.
type Journal struct {
	mu      sync.RWMutex
	records []domain.TaskRecord
}

// NewJournal creates a new in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a task outcome.
func (j *Journal) Record(_ context.Context, rec domain.TaskRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, rec)
	return nil
}

// Recent returns the most recent records, newest first.
func (j *Journal) Recent(_ context.Context, limit int) ([]domain.TaskRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}

	n := len(j.records)
	if limit > n {
		limit = n
	}
	out := make([]domain.TaskRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, j.records[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory journal.
func (j *Journal) Close() error {
	return nil
}
