package utils

import (
	"strings"
)

// Truncate returns a truncated string with "..." if it exceeds maxLen.
// This function is Unicode-safe, counting runes instead of bytes.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// CollapseSpace trims the string and collapses internal whitespace runs to
// single spaces. User answers are fed to prompts through this.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
