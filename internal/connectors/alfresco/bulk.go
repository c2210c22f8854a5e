package alfresco

import (
	"context"
	"fmt"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// Ensure BulkApplicator implements the interface.
var _ driven.TagApplicator = (*BulkApplicator)(nil)

// BulkApplicator fetches the node's existing tags, diffs them against the
// request, and writes the missing tags in a single create call.
//
// The read and the write are not atomic: tags added by another actor in
// between are invisible to the diff. That race is reconciled by treating a
// 409 on the write as success, the same idempotency signal the per-tag
// strategy relies on.
type BulkApplicator struct {
	client *Client
}

// NewBulkApplicator creates the bulk strategy over a shared client.
func NewBulkApplicator(client *Client) *BulkApplicator {
	return &BulkApplicator{client: client}
}

// Strategy reports domain.StrategyBulk.
func (a *BulkApplicator) Strategy() domain.Strategy {
	return domain.StrategyBulk
}

// ApplyTags issues one read plus at most one write. A failure on the read
// fails the whole operation; there is no fallback to per-tag mode.
func (a *BulkApplicator) ApplyTags(ctx context.Context, ref domain.NodeRef, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	nodeID := ref.ID()
	existing, err := a.client.GetTags(ctx, nodeID)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(existing))
	for _, tag := range existing {
		present[tag] = true
	}

	// Diff against the remote set only. Duplicates within the request are
	// deliberately kept; order follows the input.
	var toAdd []string
	for _, tag := range tags {
		if !present[tag] {
			toAdd = append(toAdd, tag)
		}
	}

	if len(toAdd) == 0 {
		logger.Info("all tags already present: node=%s requested=%d", nodeID, len(tags))
		return nil
	}

	err = a.client.AddTags(ctx, nodeID, toAdd)
	switch {
	case err == nil:
		logger.Info("tags applied: node=%s added=%d requested=%d", nodeID, len(toAdd), len(tags))
	case IsConflict(err):
		// Lost the race to a concurrent tagger; desired state is reached.
		logger.Info("tags already exist (409): node=%s", nodeID)
	default:
		return fmt.Errorf("apply %d tags: %w", len(toAdd), err)
	}
	return nil
}

// ListTags returns the node's current tags.
func (a *BulkApplicator) ListTags(ctx context.Context, ref domain.NodeRef) ([]string, error) {
	return a.client.GetTags(ctx, ref.ID())
}
