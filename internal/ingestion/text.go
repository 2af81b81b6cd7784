// Package ingestion reads résumé and job description inputs from files or
// URLs and reduces them to clean plain text.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var (
	interiorSpace = regexp.MustCompile(`[ \t]+`)
	blankRun      = regexp.MustCompile(`\n{3,}`)
)

// Error reports a failed read of an input source.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CleanText normalizes line endings, trims trailing whitespace, collapses
// interior runs of spaces and keeps at most one blank line between blocks.
// Leading indentation, bullets and headers are preserved.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(normalizeLineEndings(content), "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.Trim(result, "\n")
}

func normalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return ""
	}
	indent := strings.Repeat(" ", len(line)-len(body))
	return indent + interiorSpace.ReplaceAllString(body, " ")
}

// IngestFromFile reads a text or HTML file and returns its cleaned text.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := readFile(path)
	if err != nil {
		return "", nil, err
	}
	return ingest(path, content)
}

// IngestResumeFromFile reads a résumé file. HTML is reduced to its text and
// line endings are normalized, but spacing is kept as written: tabs and wide
// gaps are ATS signals the engine scores.
func IngestResumeFromFile(path string) (string, *Metadata, error) {
	content, err := readFile(path)
	if err != nil {
		return "", nil, err
	}
	content, err = extractIfHTML(path, content)
	if err != nil {
		return "", nil, err
	}
	text := normalizeLineEndings(content)
	return text, NewMetadata(path, text), nil
}

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &Error{Source: path, Message: "file not found", Cause: err}
		}
		return "", &Error{Source: path, Message: "failed to read file", Cause: err}
	}
	return string(content), nil
}

// IngestFromURL fetches a job posting page and returns its cleaned main text.
func IngestFromURL(ctx context.Context, client *fetch.Client, rawURL string) (string, *Metadata, error) {
	text, _, err := client.JobPosting(ctx, rawURL)
	if err != nil {
		return "", nil, &Error{Source: rawURL, Message: "fetch failed", Cause: err}
	}
	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, &Error{Source: rawURL, Message: "no text content"}
	}
	return cleaned, NewMetadata(rawURL, cleaned), nil
}

func ingest(source, content string) (string, *Metadata, error) {
	content, err := extractIfHTML(source, content)
	if err != nil {
		return "", nil, err
	}
	cleaned := CleanText(content)
	return cleaned, NewMetadata(source, cleaned), nil
}

func extractIfHTML(source, content string) (string, error) {
	if !LooksLikeHTML(content) {
		return content, nil
	}
	text, err := ExtractHTMLText(content)
	if err != nil {
		return "", &Error{Source: source, Message: "failed to extract HTML text", Cause: err}
	}
	return text, nil
}
