// Package schema defines the textual schema the evaluator asks the upstream
// model to produce. The prompt builder renders these anchors into its
// instructions and the extractor matches responses against the same anchors,
// so both sides change in lockstep.
package schema

// Score anchor labels. The prompt requests one line per label in the form
// "<LABEL> SCORE: <n>/100" and the extractor scans for exactly that shape.
const (
	LabelInnovation = "INNOVATION"
	LabelNovelty    = "NOVELTY"
	LabelOverall    = "OVERALL"
)

// Section anchor headers. Each introduces a bulleted list in the response.
const (
	SectionStrengths       = "STRENGTHS"
	SectionWeaknesses      = "WEAKNESSES"
	SectionRecommendations = "RECOMMENDATIONS"
)

// ScoreLabels lists the score anchors in report order.
func ScoreLabels() []string {
	return []string{LabelInnovation, LabelNovelty, LabelOverall}
}

// SectionLabels lists the section anchors in report order.
func SectionLabels() []string {
	return []string{SectionStrengths, SectionWeaknesses, SectionRecommendations}
}

// ScoreLine renders the example line the prompt shows the model for a label,
// e.g. "INNOVATION SCORE: <0-100>/100".
func ScoreLine(label string) string {
	return label + " SCORE: <0-100>/100"
}
