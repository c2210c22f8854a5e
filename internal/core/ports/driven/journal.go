package driven

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

// TaskJournal persists the outcome of processed tag tasks.
// One record is written per processed task, success or failure.
type TaskJournal interface {
	// Record appends a task outcome.
	Record(ctx context.Context, rec domain.TaskRecord) error

	// Recent returns the most recently processed records, newest first,
	// up to limit entries.
	Recent(ctx context.Context, limit int) ([]domain.TaskRecord, error)

	// Close releases any underlying resources.
	Close() error
}
