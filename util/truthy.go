package util

import "strings"

// Truthy reports whether s spells out an affirmative value,
// ignoring case and surrounding whitespace.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
