package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configfile "github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/config/file"
	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driving/queue"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the tagging worker",
	Long: `Consume tagging tasks from the queue and apply them to the repository.

The worker connects to the configured NATS server, subscribes to the task
subject with a durable consumer and processes tasks until interrupted.
Failed tasks are returned to the queue for redelivery. Changes to the
config file are picked up without a restart.`,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	if err := ensureTaggingService(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credential providers read the store on every request, so a reload
	// is enough to rotate credentials on a running worker.
	if fileStore != nil {
		watcher := configfile.NewWatcher(fileStore, func() {
			logger.Info("configuration reloaded")
		})
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	consumer := queue.NewConsumer(queue.Config{
		URL:     configStore.GetString(keyNATSURL),
		Stream:  configStore.GetString(keyNATSStream),
		Subject: configStore.GetString(keyNATSSubject),
		Durable: configStore.GetString(keyNATSDurable),
	}, taggingService)

	cmd.Println("Worker started. Press Ctrl+C to stop.")
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	cmd.Println("Worker stopped.")
	return nil
}
