package utils

import "strings"

// TruncateForLog collapses whitespace runs and shortens s to limit runes,
// appending an ellipsis when something was cut.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")

	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
