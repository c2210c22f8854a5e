package alfresco

import (
	"errors"
	"fmt"
	"net/http"
)

// Alfresco-specific errors.
var (
	// ErrBaseURLRequired indicates no repository base URL is configured.
	ErrBaseURLRequired = errors.New("alfresco: base URL is required")

	// ErrEmptyNodeID indicates the node reference degenerated to an empty id.
	ErrEmptyNodeID = errors.New("alfresco: empty node id")
)

// APIError represents an Alfresco API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alfresco: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsConflict checks if the error is a 409 Conflict.
// Conflict is the repository's "tag already present" signal and is absorbed
// by both strategies rather than surfaced.
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusConflict
	}
	return false
}

// IsNotFound checks if the error indicates the node was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
