package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var htmlMarker = regexp.MustCompile(`(?i)<!doctype html|<html[\s>]|<body[\s>]|<(?:div|p|ul|li|h[1-6]|br|span|table)[\s>/]`)

// LooksLikeHTML reports whether content is markup rather than plain text.
func LooksLikeHTML(content string) bool {
	head := content
	if len(head) > 4096 {
		head = head[:4096]
	}
	return strings.Contains(head, "<") && htmlMarker.MatchString(head)
}

// ExtractHTMLText strips markup from an HTML document, keeping one line per block element.
func ExtractHTMLText(html string) (string, error) {
	return fetch.ExtractMainText(html, fetch.DefaultTextSelectors())
}
