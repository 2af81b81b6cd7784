// Package parsing turns raw résumé and job text into normalized tokens and weighted terms.
package parsing

import (
	"regexp"
	"strings"
)

// nonWordRun matches runs of characters outside [A-Za-z0-9_], whitespace included.
var nonWordRun = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Normalize lowercases text, replaces every run of non-word characters with a
// single space and trims the result. Normalizing normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	return strings.TrimSpace(nonWordRun.ReplaceAllString(lowered, " "))
}

// Tokenize splits normalized text on whitespace.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
