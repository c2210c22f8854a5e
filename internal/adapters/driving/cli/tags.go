package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [node-ref]",
	Short: "List the tags on a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runTags,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently processed tagging tasks",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	if err := ensureTaggingService(); err != nil {
		return err
	}

	tags, err := taggingService.ListTags(context.Background(), domain.NodeRef(args[0]))
	if err != nil {
		return fmt.Errorf("list tags failed: %w", err)
	}

	if len(tags) == 0 {
		cmd.Println("No tags.")
		return nil
	}
	for _, tag := range tags {
		cmd.Println(tag)
	}
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := ensureTaggingService(); err != nil {
		return err
	}

	records, err := taggingService.History(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No tasks processed yet.")
		return nil
	}
	for _, rec := range records {
		line := fmt.Sprintf("%s  %s  %s  %d tag(s)",
			rec.ProcessedAt.Format("2006-01-02 15:04:05"), rec.Outcome, rec.NodeRef, rec.Requested)
		if rec.Error != "" {
			line += "  " + rec.Error
		}
		cmd.Println(line)
	}
	return nil
}
