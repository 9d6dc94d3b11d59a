// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-edit-agent/internal/tools"
	"github.com/jonathan/resume-edit-agent/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintChangeBatch outputs the suggested change batch with before/after text.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintChangeBatch(batch *types.SuggestedChanges) {
	if batch == nil || len(batch.Changes) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CHANGES SUGGESTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if batch.Description != "" {
		sb.WriteString(batch.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("%d change(s):\n\n", len(batch.Changes)))

	count := min(len(batch.Changes), maxItemsToShow)
	for i := 0; i < count; i++ {
		change := batch.Changes[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, change.Section))
		if change.Original != "" {
			sb.WriteString(fmt.Sprintf("  - %s\n", truncate(change.Original, 50)))
		}
		sb.WriteString(fmt.Sprintf("  + %s\n", truncate(change.Updated, 50)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(batch.Changes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more changes", len(batch.Changes)-maxItemsToShow))
	}

	p.printBox("SUGGESTED CHANGES", sb.String())
}

// PrintSearchResults outputs search matches with their locations.
func (p *Printer) PrintSearchResults(result tools.SearchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query:   %q\n", result.Query))
	sb.WriteString(fmt.Sprintf("Matches: %d\n", result.Count))

	if result.Count > 0 {
		sb.WriteString("\n")
		count := min(len(result.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := result.Matches[i]
			sb.WriteString(fmt.Sprintf("• %s\n", match.Location))
			sb.WriteString(fmt.Sprintf("  %s\n", truncate(match.Text, 50)))
		}
		if len(result.Matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more matches\n", len(result.Matches)-maxItemsToShow))
		}
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the structural statistics and completeness assessment.
func (p *Printer) PrintStats(stats tools.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", stats.EducationEntries))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", stats.ExperienceEntries))
	sb.WriteString(fmt.Sprintf("Project entries:    %d\n", stats.ProjectEntries))
	sb.WriteString(fmt.Sprintf("Leadership entries: %d\n", stats.LeadershipEntries))
	sb.WriteString(fmt.Sprintf("Total bullets:      %d\n", stats.TotalBullets))
	sb.WriteString(fmt.Sprintf("Word count:         %d\n", stats.WordCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Completeness: %d%%\n", stats.Completeness.Percent))

	missing := missingFields(stats.Completeness)
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing: %s", strings.Join(missing, ", ")))
	} else {
		sb.WriteString("All tracked fields populated")
	}

	p.printBox("RESUME STATS", sb.String())
}

func missingFields(c tools.Completeness) []string {
	var missing []string
	for _, field := range []struct {
		name    string
		present bool
	}{
		{"name", c.Name},
		{"title", c.Title},
		{"contact", c.Contact},
		{"education", c.Education},
		{"experience", c.Experience},
		{"projects", c.Projects},
		{"leadership", c.Leadership},
		{"skills", c.Skills},
	} {
		if !field.present {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
