// Package cli provides the cobra command tree for the tagsmith binary.
//
// Commands build their dependencies lazily on first use, so commands that
// only touch configuration work before the repository connection is set
// up. Tests inject fakes into the same package-level slots.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driving"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services built lazily by the bootstrap helpers.
var (
	taggingService driving.TaggingService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tagsmith",
	Short: "Attach tags to documents in an Alfresco repository",
	Long: `tagsmith applies free-text tags to documents stored in an Alfresco
content repository, either directly from the command line or by consuming
tagging tasks from a queue.

Configure the repository connection first:

  tagsmith auth basic --username admin
  tagsmith config set alfresco.base_url https://alfresco.example.com

Then tag documents:

  tagsmith apply workspace://SpacesStore/<node-id> --tag invoice --tag 2026`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
