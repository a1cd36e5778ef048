package viewmodel

import "strings"

// Truncate shortens s to at most n characters for display, appending an
// ellipsis when it was cut. Empty input renders as a placeholder dash.
func Truncate(s string, n int) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
