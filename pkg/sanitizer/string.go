package sanitizer

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// SingleLine replaces line breaks with spaces and normalizes whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// DefaultIfEmpty returns def when s is empty after trimming, otherwise s unchanged.
func DefaultIfEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
