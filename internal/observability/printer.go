// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/project-evaluator/internal/types"
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

// PrintReport outputs a human-readable summary of one evaluation report.
func (p *Printer) PrintReport(report *types.EvaluationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Innovation: %s\n", scoreString(report.Scores.Innovation)))
	sb.WriteString(fmt.Sprintf("Novelty:    %s\n", scoreString(report.Scores.Novelty)))
	sb.WriteString(fmt.Sprintf("Overall:    %s\n", scoreString(report.Scores.Overall)))
	if report.TokensUsed != nil {
		sb.WriteString(fmt.Sprintf("Tokens:     %d\n", *report.TokensUsed))
	}
	sb.WriteString("\n")
	writeItems(&sb, "Strengths", report.Strengths)
	writeItems(&sb, "Weaknesses", report.Weaknesses)
	writeItems(&sb, "Recommendations", report.Recommendations)

	p.printBox(fmt.Sprintf("Evaluation: %s", report.Project.DisplayName()), sb.String())
}

// PrintBatchSummary outputs the aggregate view of a batch run.
func (p *Printer) PrintBatchSummary(summary *types.BatchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Projects:  %d\n", len(summary.Items)))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", summary.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", summary.Failed))
	if summary.AverageOverall != nil {
		sb.WriteString(fmt.Sprintf("Average overall: %.1f/100\n", *summary.AverageOverall))
	} else {
		sb.WriteString("Average overall: N/A\n")
	}
	for _, item := range summary.Items {
		if item.Err != "" {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", item.Project.DisplayName(), item.Err))
		}
	}

	p.printBox("Batch Evaluation", sb.String())
}

// PrintComparison outputs the verdict of a pairwise comparison.
func (p *Printer) PrintComparison(result *types.ComparisonResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: overall %s\n", result.ReportA.Project.DisplayName(), scoreString(result.ReportA.Scores.Overall)))
	sb.WriteString(fmt.Sprintf("%s: overall %s\n", result.ReportB.Project.DisplayName(), scoreString(result.ReportB.Scores.Overall)))
	sb.WriteString(fmt.Sprintf("Winner:   %s\n", result.Winner))
	sb.WriteString(fmt.Sprintf("Rationale: %s\n", result.Rationale))

	p.printBox("Comparison", sb.String())
}

func scoreString(score *int) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d/100", *score)
}

func writeItems(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  … and %d more\n", len(items)-maxItemsToShow))
	}
}
