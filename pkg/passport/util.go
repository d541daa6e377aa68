package passport

import "strings"

// normalizeText collapses all whitespace runs to single spaces.
func normalizeText(t string) string {
	return strings.Join(strings.Fields(t), " ")
}

// snippet shortens text for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
