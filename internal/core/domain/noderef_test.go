package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeRef_ID(t *testing.T) {
	t.Run("extracts uuid from workspace reference", func(t *testing.T) {
		ref := NodeRef("workspace://SpacesStore/1234-5678")

		assert.Equal(t, "1234-5678", ref.ID())
	})

	t.Run("extracts last segment from archive store", func(t *testing.T) {
		ref := NodeRef("archive://SpacesStore/ab12-cd34-ef56")

		assert.Equal(t, "ab12-cd34-ef56", ref.ID())
	})

	t.Run("returns input unchanged when no separator", func(t *testing.T) {
		// Bare node ids pass through untouched.
		ref := NodeRef("1234-5678")

		assert.Equal(t, "1234-5678", ref.ID())
	})

	t.Run("handles empty reference", func(t *testing.T) {
		assert.Equal(t, "", NodeRef("").ID())
	})

	t.Run("trailing slash yields empty id", func(t *testing.T) {
		assert.Equal(t, "", NodeRef("workspace://SpacesStore/").ID())
	})
}

func TestNodeRef_String(t *testing.T) {
	t.Run("round-trips the raw reference", func(t *testing.T) {
		ref := NodeRef("workspace://SpacesStore/x")

		assert.Equal(t, "workspace://SpacesStore/x", ref.String())
	})
}
