package cli

import (
	"fmt"

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/auth"
	configfile "github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/config/file"
	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/storage/memory"
	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/storage/sqlite"
	"github.com/tagsmith-io/tagsmith-cli/internal/connectors/alfresco"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/services"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// Config keys read at bootstrap. Credential keys live in the auth package.
const (
	keyBaseURL  = "alfresco.base_url"
	keyRate     = "alfresco.rate_per_second"
	keyPageSize = "alfresco.page_size"
	keyStrategy = "worker.strategy"

	keyNATSURL     = "nats.url"
	keyNATSStream  = "nats.stream"
	keyNATSSubject = "nats.subject"
	keyNATSDurable = "nats.durable"
)

// fileStore keeps the concrete store for the config watcher.
var fileStore *configfile.ConfigStore

// journal is closed on Shutdown.
var journal *sqlite.Journal

// strategyOverride takes precedence over the configured strategy when set.
var strategyOverride string

// ensureConfigStore opens the config store on first use.
func ensureConfigStore() error {
	if configStore != nil {
		return nil
	}
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config store: %w", err)
	}
	fileStore = store
	configStore = store
	return nil
}

// ensureTaggingService builds the full processing chain on first use:
// credentials provider, repository applicator, journal, service.
func ensureTaggingService() error {
	if taggingService != nil {
		return nil
	}
	if err := ensureConfigStore(); err != nil {
		return err
	}

	creds, err := auth.NewFromConfig(configStore)
	if err != nil {
		return fmt.Errorf("failed to build credentials provider: %w", err)
	}

	rawStrategy := strategyOverride
	if rawStrategy == "" {
		rawStrategy = configStore.GetString(keyStrategy)
	}
	strategy, err := domain.ParseStrategy(rawStrategy)
	if err != nil {
		return err
	}

	cfg := &alfresco.Config{
		BaseURL:       configStore.GetString(keyBaseURL),
		RatePerSecond: float64(configStore.GetInt(keyRate)),
		PageSize:      configStore.GetInt(keyPageSize),
	}
	applicator, err := alfresco.New(strategy, cfg, creds)
	if err != nil {
		return fmt.Errorf("failed to build repository client: %w", err)
	}

	// The journal is best-effort; fall back to an in-memory one so the
	// current process can still answer history queries.
	var taskJournal driven.TaskJournal
	if j, err := sqlite.NewJournal(""); err != nil {
		logger.Warn("task journal unavailable, keeping history in memory: %v", err)
		taskJournal = memory.NewJournal()
	} else {
		journal = j
		taskJournal = j
	}

	taggingService = services.NewTaggingService(applicator, taskJournal)
	return nil
}

// Shutdown releases resources held by lazily built services.
func Shutdown() {
	if journal != nil {
		if err := journal.Close(); err != nil {
			logger.Warn("failed to close journal: %v", err)
		}
		journal = nil
	}
}
