// Package utils holds small helpers shared by the scraper and the API
package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLogStringLength defines the maximum length for scraped or user-provided strings in logs
const MaxLogStringLength = 120

var unprintable = regexp.MustCompile(`[^\p{L}\p{N}\p{P}\p{S}\p{Z}]`)

// SanitizeLogString makes text from the provider page or a query string safe to log.
// Control characters become spaces, runs of whitespace collapse and long values are cut.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)
	sanitized = unprintable.ReplaceAllString(sanitized, "")
	sanitized = strings.Join(strings.Fields(sanitized), " ")

	if runes := []rune(sanitized); len(runes) > MaxLogStringLength {
		sanitized = string(runes[:MaxLogStringLength]) + "... (truncated)"
	}

	return sanitized
}
