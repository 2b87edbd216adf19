// Package observability provides formatted output utilities for verbose CLI mode
// and the structured logger shared by the pipeline.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-deck/internal/ingestion"
	"github.com/jonathan/resume-deck/internal/rendering"
	"github.com/jonathan/resume-deck/internal/types"
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

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs what was read from the source résumé.
func (p *Printer) PrintDocument(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:    %s\n", meta.Path))
	sb.WriteString(fmt.Sprintf("Format:  %s\n", meta.Format))
	sb.WriteString(fmt.Sprintf("Lines:   %d\n", meta.LineCount))
	sb.WriteString(fmt.Sprintf("SHA256:  %s", meta.Hash))

	p.printBox("SOURCE DOCUMENT", sb.String())
}

// PrintResumeRecord outputs a human-readable summary of the extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	contact := record.Contact()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.Role))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", contact.Phone))
	sb.WriteString(fmt.Sprintf("Address:  %s\n", contact.Address))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n\n", len(record.Skills), strings.Join(record.Skills, ", ")))
	}

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := record.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", e.Position))
			if e.Company != "" {
				sb.WriteString(fmt.Sprintf(", %s", e.Company))
			}
			if e.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", e.Dates))
			}
			sb.WriteString("\n")
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rendering.FormatEducation(record.Education[i:i+1])))
		}
		if len(record.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Education)-3))
		}
	}

	p.printBox("EXTRACTED RESUME RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMergeResult outputs which template regions were filled or cleared.
func (p *Printer) PrintMergeResult(result *rendering.MergeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:    %s\n", result.OutputPath))
	sb.WriteString(fmt.Sprintf("Filled:    %s\n", joinOrNone(result.Filled)))
	sb.WriteString(fmt.Sprintf("Cleared:   %s\n", joinOrNone(result.Cleared)))
	sb.WriteString(fmt.Sprintf("Untouched: %d", result.Untouched))

	p.printBox("TEMPLATE MERGE", sb.String())
}

// PrintRegions outputs the text regions of a template slide.
func (p *Printer) PrintRegions(regions []rendering.Region) {
	if len(regions) == 0 {
		p.printBox("TEMPLATE REGIONS", "no text regions on the first slide")
		return
	}

	var sb strings.Builder
	for i, r := range regions {
		label := r.Label
		if label == "" {
			label = "(unmatched)"
		}
		text := strings.ReplaceAll(r.Text, "\n", " / ")
		sb.WriteString(fmt.Sprintf("#%d  %s  →  %s\n", r.Index, r.Name, label))
		sb.WriteString(fmt.Sprintf("    Text:  %s\n", text))
		sb.WriteString(fmt.Sprintf("    Style: %s", r.Style))
		if i < len(regions)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("TEMPLATE REGIONS", sb.String())
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
