package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

func TestTagsCmd(t *testing.T) {
	t.Run("lists tags one per line", func(t *testing.T) {
		svc := &mockTaggingService{tags: []string{"invoice", "2026"}}

		out, err := execute(t, svc, "tags", "abc")

		require.NoError(t, err)
		assert.Contains(t, out, "invoice\n")
		assert.Contains(t, out, "2026\n")
	})

	t.Run("reports an untagged document", func(t *testing.T) {
		svc := &mockTaggingService{}

		out, err := execute(t, svc, "tags", "abc")

		require.NoError(t, err)
		assert.Contains(t, out, "No tags.")
	})

	t.Run("surfaces listing errors", func(t *testing.T) {
		svc := &mockTaggingService{listErr: errors.New("API error 404")}

		_, err := execute(t, svc, "tags", "missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list tags failed")
	})
}

func TestHistoryCmd(t *testing.T) {
	t.Run("prints processed tasks", func(t *testing.T) {
		svc := &mockTaggingService{records: []domain.TaskRecord{
			{
				TaskID:      "t1",
				NodeRef:     "workspace://SpacesStore/abc",
				Requested:   2,
				Outcome:     domain.OutcomeApplied,
				ProcessedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			},
			{
				TaskID:      "t2",
				NodeRef:     "workspace://SpacesStore/def",
				Outcome:     domain.OutcomeFailed,
				Error:       "API error 500",
				ProcessedAt: time.Date(2026, 8, 30, 12, 1, 0, 0, time.UTC),
			},
		}}

		out, err := execute(t, svc, "history")

		require.NoError(t, err)
		assert.Contains(t, out, "applied")
		assert.Contains(t, out, "workspace://SpacesStore/abc")
		assert.Contains(t, out, "API error 500")
	})

	t.Run("reports an empty journal", func(t *testing.T) {
		svc := &mockTaggingService{}

		out, err := execute(t, svc, "history")

		require.NoError(t, err)
		assert.Contains(t, out, "No tasks processed yet.")
	})
}
