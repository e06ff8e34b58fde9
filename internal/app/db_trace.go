package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace runs so multi-line builder output
// stays readable as a single span attribute, truncating very long statements.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
