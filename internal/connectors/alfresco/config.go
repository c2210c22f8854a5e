package alfresco

import (
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every HTTP request to the repository.
	// There is no retry after a timeout; the error surfaces to the caller.
	DefaultTimeout = 10 * time.Second

	// DefaultPageSize is the maxItems used when walking the tag listing.
	DefaultPageSize = 100
)

// Config holds the parsed configuration for the Alfresco connector.
type Config struct {
	// BaseURL is the repository root, e.g. "https://alfresco.example.com".
	// A trailing slash is trimmed.
	BaseURL string

	// Timeout bounds each HTTP request. Zero selects DefaultTimeout.
	Timeout time.Duration

	// RatePerSecond enables proactive request throttling when positive.
	// Zero disables the limiter entirely.
	RatePerSecond float64

	// PageSize is the maxItems per tag-listing page.
	// Zero selects DefaultPageSize.
	PageSize int
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return nil
}
