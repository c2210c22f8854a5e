package domain

import "strings"

// NormalizeTags trims surrounding whitespace from each tag and drops entries
// that are empty after trimming. Input order is preserved.
//
// Duplicates are intentionally kept: the apply strategies deduplicate only
// against the node's current remote tag set, never within the request itself.
func NormalizeTags(raw []string) []string {
	var out []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// ParseCommaSeparated splits a comma-separated string into normalized tags.
// Returns nil for blank input.
func ParseCommaSeparated(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(input, ","))
}
