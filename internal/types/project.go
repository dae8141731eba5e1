// Package types provides type definitions for structured data used throughout the project evaluator.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EvaluationMode selects which prompt schema an evaluation uses.
type EvaluationMode string

// Evaluation modes supported by the prompt builder.
const (
	// ModeSingle is the default innovation/novelty evaluation.
	ModeSingle EvaluationMode = "single"
	// ModeCode evaluates a project with emphasis on its code context.
	ModeCode EvaluationMode = "code"
	// ModePatentability evaluates a project for patentability signals.
	ModePatentability EvaluationMode = "patentability"
	// ModeComparison generates the comparative narrative between two projects.
	ModeComparison EvaluationMode = "comparison"
)

// Valid reports whether the mode is one the prompt builder knows.
func (m EvaluationMode) Valid() bool {
	switch m {
	case ModeSingle, ModeCode, ModePatentability, ModeComparison:
		return true
	}
	return false
}

// ProjectInput represents a project submitted for evaluation.
// Synopsis is required; Name and CodeContext are optional.
type ProjectInput struct {
	Name        string `json:"name,omitempty"`
	Synopsis    string `json:"synopsis" validate:"required"`
	CodeContext string `json:"code_context,omitempty"`
}

// Validate checks the input using the validator and rejects
// whitespace-only synopses, which the required tag alone would accept.
func (p *ProjectInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Synopsis) == "" {
		return fmt.Errorf("synopsis must not be blank")
	}
	return nil
}

// DisplayName returns the project name, or a stable placeholder when unset.
func (p *ProjectInput) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return "Unnamed Project"
}
