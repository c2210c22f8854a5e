package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

var applyCmd = &cobra.Command{
	Use:   "apply [node-ref]",
	Short: "Apply tags to a document",
	Long: `Apply one or more tags to a document in the repository.

The node reference may be a full ref such as workspace://SpacesStore/<id>
or a bare node id. Tags already present on the document are skipped.

Examples:
  tagsmith apply workspace://SpacesStore/abc-123 --tag invoice --tag 2026
  tagsmith apply abc-123 --tags invoice,2026`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

// Flags for apply.
var (
	applyTags    []string
	applyTagsCSV string
)

func init() {
	applyCmd.Flags().StringArrayVar(
		&applyTags, "tag", nil, "Tag to apply (repeatable)")
	applyCmd.Flags().StringVar(
		&applyTagsCSV, "tags", "", "Comma-separated list of tags to apply")
	applyCmd.Flags().StringVar(
		&strategyOverride, "strategy", "", "Tagging strategy (per-tag or bulk), overrides config")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if err := ensureTaggingService(); err != nil {
		return err
	}

	tags := append([]string{}, applyTags...)
	tags = append(tags, domain.ParseCommaSeparated(applyTagsCSV)...)

	task := domain.TagTask{
		ID:         uuid.NewString(),
		NodeRef:    domain.NodeRef(args[0]),
		Tags:       tags,
		EnqueuedAt: time.Now().UTC(),
	}

	record, err := taggingService.Process(context.Background(), task)
	if err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	switch record.Outcome {
	case domain.OutcomeNoop:
		cmd.Println("Nothing to apply: no tags given.")
	default:
		cmd.Printf("Applied %d tag(s) to %s.\n", record.Requested, task.NodeRef)
	}
	return nil
}
