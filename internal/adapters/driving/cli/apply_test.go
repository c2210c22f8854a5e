package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

// mockTaggingService records calls for command tests.
type mockTaggingService struct {
	processErr error
	tasks      []domain.TagTask
	tags       []string
	listErr    error
	records    []domain.TaskRecord
}

func (m *mockTaggingService) Process(_ context.Context, task domain.TagTask) (domain.TaskRecord, error) {
	m.tasks = append(m.tasks, task)
	if m.processErr != nil {
		return domain.TaskRecord{Outcome: domain.OutcomeFailed}, m.processErr
	}
	normalized := domain.NormalizeTags(task.Tags)
	outcome := domain.OutcomeApplied
	if len(normalized) == 0 {
		outcome = domain.OutcomeNoop
	}
	return domain.TaskRecord{
		TaskID:    task.ID,
		NodeRef:   task.NodeRef,
		Requested: len(normalized),
		Outcome:   outcome,
	}, nil
}

func (m *mockTaggingService) ListTags(_ context.Context, _ domain.NodeRef) ([]string, error) {
	return m.tags, m.listErr
}

func (m *mockTaggingService) History(_ context.Context, limit int) ([]domain.TaskRecord, error) {
	if limit > 0 && limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

// execute runs the root command with an injected service and returns output.
func execute(t *testing.T, svc *mockTaggingService, args ...string) (string, error) {
	t.Helper()

	taggingService = svc
	t.Cleanup(func() { taggingService = nil })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestApplyCmd_Use(t *testing.T) {
	assert.Equal(t, "apply [node-ref]", applyCmd.Use)
}

func TestApplyCmd(t *testing.T) {
	t.Run("applies repeated tag flags in order", func(t *testing.T) {
		svc := &mockTaggingService{}
		defer func() { applyTags = nil }()

		out, err := execute(t, svc,
			"apply", "workspace://SpacesStore/abc", "--tag", "invoice", "--tag", "2026")

		require.NoError(t, err)
		require.Len(t, svc.tasks, 1)
		task := svc.tasks[0]
		assert.Equal(t, domain.NodeRef("workspace://SpacesStore/abc"), task.NodeRef)
		assert.Equal(t, []string{"invoice", "2026"}, task.Tags)
		assert.NotEmpty(t, task.ID)
		assert.Contains(t, out, "Applied 2 tag(s)")
	})

	t.Run("accepts a comma-separated tag list", func(t *testing.T) {
		svc := &mockTaggingService{}
		defer func() { applyTagsCSV = "" }()

		_, err := execute(t, svc, "apply", "abc", "--tags", "a,b")

		require.NoError(t, err)
		require.Len(t, svc.tasks, 1)
		assert.Equal(t, []string{"a", "b"}, svc.tasks[0].Tags)
	})

	t.Run("reports a noop when no tags are given", func(t *testing.T) {
		svc := &mockTaggingService{}

		out, err := execute(t, svc, "apply", "abc")

		require.NoError(t, err)
		assert.Contains(t, out, "Nothing to apply")
	})

	t.Run("surfaces processing errors", func(t *testing.T) {
		svc := &mockTaggingService{processErr: errors.New("API error 500")}
		defer func() { applyTags = nil }()

		_, err := execute(t, svc, "apply", "abc", "--tag", "x")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply failed")
	})

	t.Run("requires a node-ref argument", func(t *testing.T) {
		svc := &mockTaggingService{}

		_, err := execute(t, svc, "apply")

		assert.Error(t, err)
		assert.Empty(t, svc.tasks)
	})
}
