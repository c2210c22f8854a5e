package alfresco

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Run("formats status, message and URL", func(t *testing.T) {
		err := &APIError{
			StatusCode: 409,
			Message:    "Duplicate child name not allowed",
			URL:        "http://repo/nodes/x/tags",
		}

		assert.Equal(t,
			"alfresco: API error 409: Duplicate child name not allowed (URL: http://repo/nodes/x/tags)",
			err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("apply tag: %w", &APIError{StatusCode: http.StatusConflict})

		assert.True(t, IsConflict(wrapped))
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Run("IsConflict", func(t *testing.T) {
		assert.True(t, IsConflict(&APIError{StatusCode: http.StatusConflict}))
		assert.False(t, IsConflict(&APIError{StatusCode: http.StatusInternalServerError}))
		assert.False(t, IsConflict(errors.New("plain")))
		assert.False(t, IsConflict(nil))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound}))
		assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusConflict}))
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		assert.True(t, IsUnauthorized(&APIError{StatusCode: http.StatusUnauthorized}))
		assert.False(t, IsUnauthorized(&APIError{StatusCode: http.StatusForbidden}))
	})
}
