// Package evaluation orchestrates the prompt → analysis → extraction → report
// pipeline for single projects, batches, and pairwise comparisons.
package evaluation

import (
	"context"

	"github.com/jonathan/project-evaluator/internal/extraction"
	"github.com/jonathan/project-evaluator/internal/llm"
	"github.com/jonathan/project-evaluator/internal/types"
)

// DefaultMaxInFlight bounds concurrent provider calls when no limit is configured.
const DefaultMaxInFlight = 4

// Evaluator drives evaluation pipelines against one analysis client.
type Evaluator struct {
	client      llm.Client
	maxInFlight int
}

// New creates an Evaluator. maxInFlight bounds concurrent provider calls in
// batch and comparison operations; values below 1 use DefaultMaxInFlight.
func New(client llm.Client, maxInFlight int) *Evaluator {
	if maxInFlight < 1 {
		maxInFlight = DefaultMaxInFlight
	}
	return &Evaluator{client: client, maxInFlight: maxInFlight}
}

// Evaluate runs the full pipeline for one project: validate, build the
// prompt, call the provider, and extract scores and sections from the
// response. Returns ValidationError before any remote call, UpstreamError
// when the provider fails; extraction gaps are absent fields, not errors.
func (e *Evaluator) Evaluate(ctx context.Context, input types.ProjectInput, mode types.EvaluationMode) (*types.EvaluationReport, error) {
	prompt, err := BuildPrompt(input, mode)
	if err != nil {
		return nil, err
	}

	analysis, err := e.client.Analyze(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{
			Project: input.DisplayName(),
			Message: "analysis request failed",
			Cause:   err,
		}
	}

	extracted := extraction.Parse(analysis.Text)

	report := &types.EvaluationReport{
		Project:         input,
		Scores:          extracted.Scores,
		Strengths:       extracted.Strengths,
		Weaknesses:      extracted.Weaknesses,
		Recommendations: extracted.Recommendations,
		RawText:         analysis.Text,
		Model:           analysis.Model,
	}
	if analysis.TokensUsed > 0 {
		tokens := analysis.TokensUsed
		report.TokensUsed = &tokens
	}

	return report, nil
}
