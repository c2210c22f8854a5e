package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		tags := NormalizeTags([]string{"  invoice ", "\tlegal\n"})

		assert.Equal(t, []string{"invoice", "legal"}, tags)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		tags := NormalizeTags([]string{"a", "", "   ", "b"})

		assert.Equal(t, []string{"a", "b"}, tags)
	})

	t.Run("preserves duplicates and order", func(t *testing.T) {
		// Deduplication happens against the remote tag set, not here.
		tags := NormalizeTags([]string{"b", "a", "b"})

		assert.Equal(t, []string{"b", "a", "b"}, tags)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		assert.Nil(t, NormalizeTags(nil))
		assert.Nil(t, NormalizeTags([]string{}))
	})
}

func TestParseCommaSeparated(t *testing.T) {
	t.Run("splits and normalizes", func(t *testing.T) {
		tags := ParseCommaSeparated("invoice, legal ,archive")

		assert.Equal(t, []string{"invoice", "legal", "archive"}, tags)
	})

	t.Run("returns nil for blank input", func(t *testing.T) {
		assert.Nil(t, ParseCommaSeparated(""))
		assert.Nil(t, ParseCommaSeparated("   "))
	})

	t.Run("skips empty segments", func(t *testing.T) {
		tags := ParseCommaSeparated("a,,b,")

		assert.Equal(t, []string{"a", "b"}, tags)
	})
}
