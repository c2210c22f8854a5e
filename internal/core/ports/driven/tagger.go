package driven

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

// TagApplicator ensures a set of tags exists on a repository node.
// The per-tag and bulk strategies both implement this port; callers cannot
// tell them apart except by request count against the repository.
type TagApplicator interface {
	// ApplyTags attaches the given tags to the node identified by ref.
	//
	// An empty tag list is a no-op and issues no network calls. A tag that
	// is already present on the node is not an error. Any other repository
	// failure (non-2xx/non-409 status, network error, timeout) is surfaced
	// unchanged; there is no retry and no rollback of tags already applied
	// within this call.
	ApplyTags(ctx context.Context, ref domain.NodeRef, tags []string) error

	// ListTags returns the node's current tags in repository order.
	ListTags(ctx context.Context, ref domain.NodeRef) ([]string, error)

	// Strategy reports which apply strategy this applicator implements.
	Strategy() domain.Strategy
}
