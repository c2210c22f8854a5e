package auth

import (
	"fmt"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// NewFromConfig creates the credentials provider named by the
// alfresco.auth_method key. An unset method defaults to basic,
// the native Alfresco scheme.
func NewFromConfig(store driven.ConfigStore) (driven.CredentialsProvider, error) {
	method := store.GetString(KeyAuthMethod)
	switch domain.AuthMethod(method) {
	case domain.AuthMethodBasic, "":
		return NewBasicProvider(store), nil
	case domain.AuthMethodBearer:
		return NewBearerProvider(store), nil
	default:
		return nil, fmt.Errorf("%w: unknown auth method %q", domain.ErrInvalidInput, method)
	}
}
