package auth

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// Ensure BearerProvider implements the interface.
var _ driven.CredentialsProvider = (*BearerProvider)(nil)

// BearerProvider serves a static bearer token from the config store, for
// repositories behind an SSO gateway that rejects basic credentials.
type BearerProvider struct {
	store driven.ConfigStore
}

// NewBearerProvider creates a bearer-token credentials provider.
func NewBearerProvider(store driven.ConfigStore) *BearerProvider {
	return &BearerProvider{store: store}
}

// Credentials returns the configured token.
func (p *BearerProvider) Credentials(_ context.Context) (domain.Credentials, error) {
	token := p.store.GetString(KeyToken)
	if token == "" {
		return domain.Credentials{}, domain.ErrAuthRequired
	}
	return domain.Credentials{
		Method: domain.AuthMethodBearer,
		Token:  token,
	}, nil
}

// Method returns domain.AuthMethodBearer.
func (p *BearerProvider) Method() domain.AuthMethod {
	return domain.AuthMethodBearer
}
