package util

import (
	"regexp"
	"strings"
)

var unsafeShellChars = regexp.MustCompile(`[^\w@%+=:,./-]`)

// NormalizeDomain converts user input into a site name the host proxy accepts.
// Anything after the first dot is treated as a TLD and dropped, spaces become
// hyphens and the result is lowercased. Normalizing twice is a no-op.
func NormalizeDomain(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "."); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ToLower(s)
}

// ShellQuote quotes s for use as a single POSIX shell word.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !unsafeShellChars.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
