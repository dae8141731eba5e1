package evaluation

import (
	"fmt"
	"strings"

	"github.com/jonathan/project-evaluator/internal/prompts"
	"github.com/jonathan/project-evaluator/internal/schema"
	"github.com/jonathan/project-evaluator/internal/types"
)

// promptKeys maps evaluation modes to their template keys in evaluation.json.
var promptKeys = map[types.EvaluationMode]string{
	types.ModeSingle:        "evaluate-single",
	types.ModeCode:          "evaluate-code",
	types.ModePatentability: "evaluate-patentability",
}

// SystemPrompt returns the system instruction sent with every analysis call.
func SystemPrompt() string {
	return prompts.MustGet("evaluation.json", "system")
}

// BuildPrompt renders the instruction prompt for one project. The rendered
// prompt embeds the schema anchors so the extractor can locate scores and
// sections in the response. Fails only on invalid input.
func BuildPrompt(input types.ProjectInput, mode types.EvaluationMode) (string, error) {
	if err := input.Validate(); err != nil {
		return "", &ValidationError{Field: "synopsis", Message: "synopsis is required and must not be blank"}
	}

	key, ok := promptKeys[mode]
	if !ok {
		return "", &ValidationError{Field: "mode", Message: fmt.Sprintf("unsupported evaluation mode %q", mode)}
	}

	codeBlock := "\n"
	if strings.TrimSpace(input.CodeContext) != "" {
		codeBlock = fmt.Sprintf("\nCODE CONTEXT:\n%s\n\n", strings.TrimSpace(input.CodeContext))
	}

	template := prompts.MustGet("evaluation.json", key)
	return prompts.Format(template, map[string]string{
		"Synopsis":         strings.TrimSpace(input.Synopsis),
		"CodeContextBlock": codeBlock,
		"InnovationLine":   schema.ScoreLine(schema.LabelInnovation),
		"NoveltyLine":      schema.ScoreLine(schema.LabelNovelty),
		"OverallLine":      schema.ScoreLine(schema.LabelOverall),
		"Strengths":        schema.SectionStrengths,
		"Weaknesses":       schema.SectionWeaknesses,
		"Recommendations":  schema.SectionRecommendations,
	}), nil
}

// buildComparisonPrompt renders the comparative-narrative prompt from two
// completed analyses.
func buildComparisonPrompt(a, b *types.EvaluationReport) string {
	template := prompts.MustGet("evaluation.json", "compare-projects")
	return prompts.Format(template, map[string]string{
		"NameA":     a.Project.DisplayName(),
		"NameB":     b.Project.DisplayName(),
		"AnalysisA": strings.TrimSpace(a.RawText),
		"AnalysisB": strings.TrimSpace(b.RawText),
	})
}
