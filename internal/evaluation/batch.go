package evaluation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/project-evaluator/internal/types"
)

// EvaluateBatch evaluates every input independently, bounded by the
// configured in-flight limit. A failure for one project is recorded in its
// slot and never aborts siblings. Results preserve input order regardless of
// completion order: each goroutine writes only its own index.
func (e *Evaluator) EvaluateBatch(ctx context.Context, inputs []types.ProjectInput) (*types.BatchSummary, error) {
	if len(inputs) == 0 {
		return nil, &ValidationError{Message: "no projects provided"}
	}

	items := make([]types.BatchItem, len(inputs))

	var g errgroup.Group
	g.SetLimit(e.maxInFlight)
	for i := range inputs {
		g.Go(func() error {
			report, err := e.Evaluate(ctx, inputs[i], types.ModeSingle)
			if err != nil {
				items[i] = types.BatchItem{Project: inputs[i], Err: err.Error()}
				return nil
			}
			items[i] = types.BatchItem{Project: inputs[i], Report: report}
			return nil
		})
	}
	_ = g.Wait() // per-item errors land in their slots

	summary := &types.BatchSummary{Items: items}
	var sum, counted int
	for _, item := range items {
		if item.Report == nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		if item.Report.Scores.Overall != nil {
			sum += *item.Report.Scores.Overall
			counted++
		}
	}
	if counted > 0 {
		avg := float64(sum) / float64(counted)
		summary.AverageOverall = &avg
	}

	return summary, nil
}
