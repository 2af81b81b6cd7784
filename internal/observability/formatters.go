// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintAnalysis prints every box for one result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintOverview(result)
	p.PrintKeywords(&result.KeywordMatches)
	p.PrintSkills(result.MatchedSkills, result.MissingSkills)
	p.PrintSections(&result.Sections)
	p.PrintSuggestions(result.Suggestions)
}

// PrintOverview outputs the headline scores.
func (p *Printer) PrintOverview(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:      %3d / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Readability:        %3d / 100\n", result.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("ATS compatibility:  %3d / 100\n", result.ATSCompatibilityScore))
	sb.WriteString(fmt.Sprintf("Processing time:    %d ms", result.ProcessingTimeMs))

	p.printBox("MATCH OVERVIEW", sb.String())
}

// PrintKeywords outputs the keyword match rate with the top found and missed terms.
func (p *Printer) PrintKeywords(keywords *types.KeywordMatchResult) {
	if keywords == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d of %d job terms (%d%%)\n",
		keywords.MatchedCount, keywords.TotalJobTerms, keywords.Percentage))

	var found, missed []string
	for _, d := range keywords.Details {
		if d.Found {
			found = append(found, d.Term)
		} else {
			missed = append(missed, d.Term)
		}
	}

	if len(found) > 0 {
		sb.WriteString("\nFound:\n")
		writeList(&sb, found, maxItemsToShow)
	}
	if len(missed) > 0 {
		sb.WriteString("\nMissing:\n")
		writeList(&sb, missed, maxItemsToShow)
	}

	p.printBox("KEYWORD MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs matched and missing vocabulary skills.
func (p *Printer) PrintSkills(matched []types.MatchedSkill, missing []types.MissingSkill) {
	if len(matched) == 0 && len(missing) == 0 {
		return
	}

	var sb strings.Builder
	if len(matched) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(matched)))
		count := min(len(matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s (%.0f%%)\n", matched[i].Name, matched[i].Confidence*100))
		}
		if len(matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matched)-maxItemsToShow))
		}
	}

	if len(missing) > 0 {
		if len(matched) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(missing)))
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s [%s]\n", missing[i].Name, missing[i].Category))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the five section scores with their feedback.
func (p *Printer) PrintSections(sections *types.Sections) {
	if sections == nil {
		return
	}

	var sb strings.Builder
	for _, s := range sections.Ordered() {
		sb.WriteString(fmt.Sprintf("%-11s %3d  %s\n", s.Name, s.Score.Score, s.Score.Feedback))
		for _, issue := range s.Score.Issues {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
	}

	p.printBox("SECTION SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the ranked suggestions.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[P%d] %s\n", s.Priority, s.Category))
		sb.WriteString(fmt.Sprintf("  %s", s.Text))
		if i < len(suggestions)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
