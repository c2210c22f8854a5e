package driving

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

// TaggingService is the application's public operation: process one tag task.
// Both the queue consumer and the ad-hoc CLI command drive this port.
type TaggingService interface {
	// Process normalizes the task's tags, applies them to the node, and
	// journals the outcome. The returned record reflects what happened even
	// when err is non-nil (Outcome is then domain.OutcomeFailed).
	Process(ctx context.Context, task domain.TagTask) (domain.TaskRecord, error)

	// ListTags returns the node's current tags.
	ListTags(ctx context.Context, ref domain.NodeRef) ([]string, error)

	// History returns the most recent journalled task records, newest
	// first. Returns nil when no journal is configured.
	History(ctx context.Context, limit int) ([]domain.TaskRecord, error)
}
