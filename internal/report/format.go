// Package report renders evaluation results as markdown. Rendering is
// deterministic: the same report always produces byte-identical output, and
// absent data is marked explicitly instead of omitted.
package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/project-evaluator/internal/types"
)

const (
	// scorePlaceholder marks a score the extractor could not locate.
	scorePlaceholder = "N/A"
	// sectionPlaceholder marks a section with no extracted items.
	sectionPlaceholder = "None identified"
)

// Single renders a full markdown report for one evaluated project.
func Single(r *types.EvaluationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Innovation & Novelty Evaluation: %s\n\n", r.Project.DisplayName())

	b.WriteString("## Scores\n\n")
	writeScores(&b, r.Scores)
	b.WriteString("\n")

	writeSection(&b, "Strengths", r.Strengths)
	writeSection(&b, "Weaknesses", r.Weaknesses)
	writeSection(&b, "Recommendations", r.Recommendations)

	b.WriteString("## Analysis\n\n")
	b.WriteString(strings.TrimSpace(r.RawText))
	b.WriteString("\n")

	writeUsage(&b, r)

	return b.String()
}

// Batch renders every item of a batch evaluation plus an aggregate summary
// block. Failed items render their error in place of a report.
func Batch(s *types.BatchSummary) string {
	var b strings.Builder

	b.WriteString("# Batch Innovation & Novelty Evaluation\n\n")

	for _, item := range s.Items {
		if item.Report != nil {
			fmt.Fprintf(&b, "## %s\n\n", item.Project.DisplayName())
			writeScores(&b, item.Report.Scores)
			b.WriteString("\n")
			b.WriteString(strings.TrimSpace(item.Report.RawText))
			b.WriteString("\n\n")
		} else {
			fmt.Fprintf(&b, "## %s\n\nError: %s\n\n", item.Project.DisplayName(), item.Err)
		}
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Projects evaluated: %d\n", len(s.Items))
	fmt.Fprintf(&b, "- Succeeded: %d\n", s.Succeeded)
	fmt.Fprintf(&b, "- Failed: %d\n", s.Failed)
	if s.AverageOverall != nil {
		fmt.Fprintf(&b, "- Average overall score: %.1f/100\n", *s.AverageOverall)
	} else {
		fmt.Fprintf(&b, "- Average overall score: %s\n", scorePlaceholder)
	}

	return b.String()
}

// Comparison renders both evaluations, the verdict, and the comparative
// narrative when present.
func Comparison(c *types.ComparisonResult) string {
	nameA := c.ReportA.Project.DisplayName()
	nameB := c.ReportB.Project.DisplayName()

	var b strings.Builder
	fmt.Fprintf(&b, "# Project Comparison: %s vs %s\n\n", nameA, nameB)

	b.WriteString("## Verdict\n\n")
	switch c.Winner {
	case types.WinnerA:
		fmt.Fprintf(&b, "Winner: %s\n", nameA)
	case types.WinnerB:
		fmt.Fprintf(&b, "Winner: %s\n", nameB)
	default:
		b.WriteString("Winner: tie\n")
	}
	fmt.Fprintf(&b, "Rationale: %s\n\n", c.Rationale)

	b.WriteString("## Individual Evaluations\n\n")
	fmt.Fprintf(&b, "### %s\n\n", nameA)
	writeScores(&b, c.ReportA.Scores)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(c.ReportA.RawText))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "### %s\n\n", nameB)
	writeScores(&b, c.ReportB.Scores)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(c.ReportB.RawText))
	b.WriteString("\n\n")

	b.WriteString("## Comparative Analysis\n\n")
	if strings.TrimSpace(c.Analysis) != "" {
		b.WriteString(strings.TrimSpace(c.Analysis))
		b.WriteString("\n")
	} else {
		b.WriteString("Comparative analysis unavailable.\n")
	}

	return b.String()
}

func writeScores(b *strings.Builder, s types.EvaluationScores) {
	fmt.Fprintf(b, "- Innovation: %s\n", formatScore(s.Innovation))
	fmt.Fprintf(b, "- Novelty: %s\n", formatScore(s.Novelty))
	fmt.Fprintf(b, "- Overall: %s\n", formatScore(s.Overall))
}

func formatScore(score *int) string {
	if score == nil {
		return scorePlaceholder
	}
	return fmt.Sprintf("%d/100", *score)
}

func writeSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString(sectionPlaceholder + "\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeUsage(b *strings.Builder, r *types.EvaluationReport) {
	b.WriteString("\n## API Usage\n\n")
	if r.TokensUsed != nil {
		fmt.Fprintf(b, "- Tokens used: %d\n", *r.TokensUsed)
	} else {
		fmt.Fprintf(b, "- Tokens used: %s\n", scorePlaceholder)
	}
	if r.Model != "" {
		fmt.Fprintf(b, "- Model: %s\n", r.Model)
	}
}
