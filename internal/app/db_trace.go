package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryLineCommentRegex = regexp.MustCompile(`--[^\n]*`)
	queryWhitespaceRegex  = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace flattens a statement into one bounded line for the db.statement span attribute.
func formatDBQueryForTrace(query string) string {
	query = queryLineCommentRegex.ReplaceAllString(query, " ")
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
