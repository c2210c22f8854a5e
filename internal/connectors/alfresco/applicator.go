package alfresco

import (
	"fmt"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// New creates the applicator for the given strategy over a fresh client.
// The configuration is validated here so construction is the single place
// where a bad base URL or strategy name surfaces.
func New(strategy domain.Strategy, cfg *Config, creds driven.CredentialsProvider) (driven.TagApplicator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := NewClient(cfg, creds)
	switch strategy {
	case domain.StrategyPerTag:
		return NewPerTagApplicator(client), nil
	case domain.StrategyBulk:
		return NewBulkApplicator(client), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStrategy, strategy)
	}
}
