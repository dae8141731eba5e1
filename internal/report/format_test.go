package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/project-evaluator/internal/types"
)

func intPtr(n int) *int { return &n }

func sampleReport() *types.EvaluationReport {
	return &types.EvaluationReport{
		Project: types.ProjectInput{Name: "Widget", Synopsis: "A tool."},
		Scores: types.EvaluationScores{
			Innovation: intPtr(73),
			Novelty:    intPtr(61),
			Overall:    intPtr(68),
		},
		Strengths:       []string{"Clear problem statement"},
		Weaknesses:      []string{"No benchmarks"},
		Recommendations: []string{"Add benchmarks"},
		RawText:         "INNOVATION SCORE: 73/100\nDetailed analysis here.",
		TokensUsed:      intPtr(420),
		Model:           "gemini-2.5-flash",
	}
}

func TestSingle(t *testing.T) {
	out := Single(sampleReport())

	assert.Contains(t, out, "# Innovation & Novelty Evaluation: Widget")
	assert.Contains(t, out, "- Innovation: 73/100")
	assert.Contains(t, out, "- Novelty: 61/100")
	assert.Contains(t, out, "- Overall: 68/100")
	assert.Contains(t, out, "## Strengths\n\n- Clear problem statement")
	assert.Contains(t, out, "## Weaknesses\n\n- No benchmarks")
	assert.Contains(t, out, "## Recommendations\n\n- Add benchmarks")
	assert.Contains(t, out, "## Analysis\n\nINNOVATION SCORE: 73/100")
	assert.Contains(t, out, "- Tokens used: 420")
	assert.Contains(t, out, "- Model: gemini-2.5-flash")
}

func TestSingle_Deterministic(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, Single(r), Single(r))
}

func TestSingle_MissingDataUsesPlaceholders(t *testing.T) {
	r := &types.EvaluationReport{
		Project: types.ProjectInput{Synopsis: "A tool."},
		RawText: "unstructured rambling",
	}

	out := Single(r)

	assert.Contains(t, out, "# Innovation & Novelty Evaluation: Unnamed Project")
	assert.Contains(t, out, "- Innovation: N/A")
	assert.Contains(t, out, "- Novelty: N/A")
	assert.Contains(t, out, "- Overall: N/A")
	assert.Contains(t, out, "## Strengths\n\nNone identified")
	assert.Contains(t, out, "## Weaknesses\n\nNone identified")
	assert.Contains(t, out, "## Recommendations\n\nNone identified")
	assert.Contains(t, out, "- Tokens used: N/A")
	assert.NotContains(t, out, "- Model:")
}

func TestBatch(t *testing.T) {
	avg := 68.0
	summary := &types.BatchSummary{
		Items: []types.BatchItem{
			{
				Project: types.ProjectInput{Name: "Widget", Synopsis: "A tool."},
				Report:  sampleReport(),
			},
			{
				Project: types.ProjectInput{Name: "Gadget", Synopsis: "Another tool."},
				Err:     "analysis request failed",
			},
		},
		Succeeded:      1,
		Failed:         1,
		AverageOverall: &avg,
	}

	out := Batch(summary)

	assert.Contains(t, out, "# Batch Innovation & Novelty Evaluation")
	assert.Contains(t, out, "## Widget")
	assert.Contains(t, out, "## Gadget\n\nError: analysis request failed")
	assert.Contains(t, out, "- Projects evaluated: 2")
	assert.Contains(t, out, "- Succeeded: 1")
	assert.Contains(t, out, "- Failed: 1")
	assert.Contains(t, out, "- Average overall score: 68.0/100")
}

func TestBatch_NoAverageWhenNoScores(t *testing.T) {
	summary := &types.BatchSummary{
		Items: []types.BatchItem{
			{Project: types.ProjectInput{Name: "Widget"}, Err: "boom"},
		},
		Failed: 1,
	}

	out := Batch(summary)

	assert.Contains(t, out, "- Average overall score: N/A")
}

func TestComparison(t *testing.T) {
	a := sampleReport()
	b := sampleReport()
	b.Project.Name = "Gadget"
	b.Scores.Overall = intPtr(50)

	result := &types.ComparisonResult{
		ReportA:   a,
		ReportB:   b,
		Winner:    types.WinnerA,
		Rationale: "Widget leads with an overall score of 68/100 vs 50/100",
		Analysis:  "Widget is the stronger project because of its focus.",
	}

	out := Comparison(result)

	assert.Contains(t, out, "# Project Comparison: Widget vs Gadget")
	assert.Contains(t, out, "Winner: Widget")
	assert.Contains(t, out, "Rationale: Widget leads with an overall score of 68/100 vs 50/100")
	assert.Contains(t, out, "### Widget")
	assert.Contains(t, out, "### Gadget")
	assert.Contains(t, out, "## Comparative Analysis\n\nWidget is the stronger project")
}

func TestComparison_TieAndMissingAnalysis(t *testing.T) {
	a := sampleReport()
	b := sampleReport()
	b.Project.Name = "Gadget"

	result := &types.ComparisonResult{
		ReportA:   a,
		ReportB:   b,
		Winner:    types.WinnerTie,
		Rationale: "tie on equal overall scores: both projects scored 68/100",
	}

	out := Comparison(result)

	assert.Contains(t, out, "Winner: tie")
	assert.Contains(t, out, "Comparative analysis unavailable.")
}
