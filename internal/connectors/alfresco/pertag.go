package alfresco

import (
	"context"
	"fmt"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// Ensure PerTagApplicator implements the interface.
var _ driven.TagApplicator = (*PerTagApplicator)(nil)

// PerTagApplicator applies tags one request at a time, sequentially, in
// input order. Existing tags are not pre-fetched; a 409 from the repository
// means the tag is already present and counts as success.
type PerTagApplicator struct {
	client *Client
}

// NewPerTagApplicator creates the per-tag strategy over a shared client.
func NewPerTagApplicator(client *Client) *PerTagApplicator {
	return &PerTagApplicator{client: client}
}

// Strategy reports domain.StrategyPerTag.
func (a *PerTagApplicator) Strategy() domain.Strategy {
	return domain.StrategyPerTag
}

// ApplyTags attaches each tag with its own create call. The first
// non-2xx/non-409 response aborts the remaining tags; tags already applied
// in this invocation stay applied (no rollback).
func (a *PerTagApplicator) ApplyTags(ctx context.Context, ref domain.NodeRef, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	nodeID := ref.ID()
	for _, tag := range tags {
		err := a.client.AddTag(ctx, nodeID, tag)
		switch {
		case err == nil:
			logger.Info("tag applied: node=%s tag=%q", nodeID, tag)
		case IsConflict(err):
			logger.Info("tag already present: node=%s tag=%q", nodeID, tag)
		default:
			return fmt.Errorf("apply tag %q: %w", tag, err)
		}
	}
	return nil
}

// ListTags returns the node's current tags.
func (a *PerTagApplicator) ListTags(ctx context.Context, ref domain.NodeRef) ([]string, error) {
	return a.client.GetTags(ctx, ref.ID())
}
