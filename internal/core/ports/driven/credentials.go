package driven

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
)

// CredentialsProvider supplies authentication material for repository calls.
// Implementations read from the config store and may pick up rotated
// credentials between calls, so the connector asks on every request.
type CredentialsProvider interface {
	// Credentials returns the current authentication material.
	// Returns domain.ErrAuthRequired when nothing is configured.
	Credentials(ctx context.Context) (domain.Credentials, error)

	// Method returns the authentication method this provider serves.
	Method() domain.AuthMethod
}
