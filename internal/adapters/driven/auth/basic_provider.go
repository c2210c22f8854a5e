// Package auth implements credentials providers backed by the config store.
// Providers read the store on every call so a config reload (e.g. a rotated
// password picked up by the fsnotify watcher) takes effect immediately.
package auth

import (
	"context"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// Config store keys for repository authentication.
const (
	KeyAuthMethod = "alfresco.auth_method"
	KeyUsername   = "alfresco.username"
	KeyPassword   = "alfresco.password"
	KeyToken      = "alfresco.token"
)

// Ensure BasicProvider implements the interface.
var _ driven.CredentialsProvider = (*BasicProvider)(nil)

// BasicProvider serves HTTP Basic credentials from the config store.
type BasicProvider struct {
	store driven.ConfigStore
}

// NewBasicProvider creates a basic-auth credentials provider.
func NewBasicProvider(store driven.ConfigStore) *BasicProvider {
	return &BasicProvider{store: store}
}

// Credentials returns the configured username and password.
func (p *BasicProvider) Credentials(_ context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{
		Method:   domain.AuthMethodBasic,
		Username: p.store.GetString(KeyUsername),
		Password: p.store.GetString(KeyPassword),
	}
	if creds.Username == "" {
		return domain.Credentials{}, domain.ErrAuthRequired
	}
	return creds, nil
}

// Method returns domain.AuthMethodBasic.
func (p *BasicProvider) Method() domain.AuthMethod {
	return domain.AuthMethodBasic
}
