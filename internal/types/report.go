package types

// EvaluationScores holds the numeric scores extracted from upstream analysis
// text. A nil field means the score could not be located; absent is distinct
// from zero.
type EvaluationScores struct {
	Innovation *int `json:"innovation,omitempty"`
	Novelty    *int `json:"novelty,omitempty"`
	Overall    *int `json:"overall,omitempty"`
}

// EvaluationReport is the structured result of evaluating one project.
// Built once per request and never mutated afterwards.
type EvaluationReport struct {
	Project         ProjectInput     `json:"project"`
	Scores          EvaluationScores `json:"scores"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Recommendations []string         `json:"recommendations"`
	RawText         string           `json:"raw_text"`
	TokensUsed      *int             `json:"tokens_used,omitempty"`
	Model           string           `json:"model,omitempty"`
}

// BatchItem is one slot of a batch evaluation, in input order.
// Exactly one of Report or Err is set.
type BatchItem struct {
	Project ProjectInput      `json:"project"`
	Report  *EvaluationReport `json:"report,omitempty"`
	Err     string            `json:"error,omitempty"`
}

// BatchSummary aggregates a batch evaluation. AverageOverall is computed
// only over succeeded items with a present overall score and is nil when no
// such item exists.
type BatchSummary struct {
	Items          []BatchItem `json:"items"`
	Succeeded      int         `json:"succeeded"`
	Failed         int         `json:"failed"`
	AverageOverall *float64    `json:"average_overall,omitempty"`
}

// Winner identifies which side of a comparison prevailed.
type Winner string

// Comparison outcomes.
const (
	WinnerA   Winner = "a"
	WinnerB   Winner = "b"
	WinnerTie Winner = "tie"
)

// ComparisonResult holds both evaluations plus the derived verdict.
// Rationale distinguishes a genuine score tie from missing data. Analysis is
// the upstream comparative narrative and may be empty when that call failed.
type ComparisonResult struct {
	ReportA   *EvaluationReport `json:"report_a"`
	ReportB   *EvaluationReport `json:"report_b"`
	Winner    Winner            `json:"winner"`
	Rationale string            `json:"rationale"`
	Analysis  string            `json:"analysis,omitempty"`
}
