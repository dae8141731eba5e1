package evaluation

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/project-evaluator/internal/types"
)

// Compare evaluates both projects concurrently and derives a winner from
// their overall scores. A one-sided upstream failure fails the whole
// comparison naming the failed project: a missing evaluation is not enough
// information to declare a winner.
func (e *Evaluator) Compare(ctx context.Context, a, b types.ProjectInput) (*types.ComparisonResult, error) {
	// Validate both inputs before spending either remote call.
	if _, err := BuildPrompt(a, types.ModeSingle); err != nil {
		return nil, err
	}
	if _, err := BuildPrompt(b, types.ModeSingle); err != nil {
		return nil, err
	}

	var reportA, reportB *types.EvaluationReport
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxInFlight)
	g.Go(func() error {
		var err error
		reportA, err = e.Evaluate(gCtx, a, types.ModeSingle)
		return err
	})
	g.Go(func() error {
		var err error
		reportB, err = e.Evaluate(gCtx, b, types.ModeSingle)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	winner, rationale := decideWinner(reportA, reportB)

	result := &types.ComparisonResult{
		ReportA:   reportA,
		ReportB:   reportB,
		Winner:    winner,
		Rationale: rationale,
	}

	// The comparative narrative is supplementary: the verdict above is
	// derived locally, so a failure here degrades to an empty section.
	analysis, err := e.client.Analyze(ctx, buildComparisonPrompt(reportA, reportB))
	if err != nil {
		log.Printf("[compare] comparative analysis call failed: %v", err)
	} else {
		result.Analysis = analysis.Text
	}

	return result, nil
}

// decideWinner compares overall scores. Ties carry distinct rationales for
// equal scores versus unextractable scores so callers can tell a statistical
// tie from missing data.
func decideWinner(a, b *types.EvaluationReport) (types.Winner, string) {
	nameA := a.Project.DisplayName()
	nameB := b.Project.DisplayName()
	oa := a.Scores.Overall
	ob := b.Scores.Overall

	switch {
	case oa == nil && ob == nil:
		return types.WinnerTie, fmt.Sprintf("tie due to missing data: no overall score could be extracted for %s or %s", nameA, nameB)
	case oa == nil:
		return types.WinnerTie, fmt.Sprintf("tie due to missing data: no overall score could be extracted for %s", nameA)
	case ob == nil:
		return types.WinnerTie, fmt.Sprintf("tie due to missing data: no overall score could be extracted for %s", nameB)
	case *oa > *ob:
		return types.WinnerA, fmt.Sprintf("%s leads with an overall score of %d/100 vs %d/100", nameA, *oa, *ob)
	case *ob > *oa:
		return types.WinnerB, fmt.Sprintf("%s leads with an overall score of %d/100 vs %d/100", nameB, *ob, *oa)
	default:
		return types.WinnerTie, fmt.Sprintf("tie on equal overall scores: both projects scored %d/100", *oa)
	}
}
