package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/project-evaluator/internal/evaluation"
	"github.com/jonathan/project-evaluator/internal/report"
	"github.com/jonathan/project-evaluator/internal/types"
)

// EvaluateRequest is the request body for POST /evaluate.
type EvaluateRequest struct {
	Name        string `json:"name,omitempty"`
	Synopsis    string `json:"synopsis"`
	CodeContext string `json:"code_context,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

// EvaluateResponse is the response body for POST /evaluate.
type EvaluateResponse struct {
	ID         string                 `json:"id"`
	Report     string                 `json:"report"`
	Scores     types.EvaluationScores `json:"scores"`
	Model      string                 `json:"model,omitempty"`
	TokensUsed *int                   `json:"tokens_used,omitempty"`
}

// BatchRequest is the request body for POST /evaluate/batch.
type BatchRequest struct {
	Projects []EvaluateRequest `json:"projects"`
}

// BatchResponse is the response body for POST /evaluate/batch.
type BatchResponse struct {
	ID             string   `json:"id"`
	Report         string   `json:"report"`
	Succeeded      int      `json:"succeeded"`
	Failed         int      `json:"failed"`
	AverageOverall *float64 `json:"average_overall,omitempty"`
}

// CompareRequest is the request body for POST /compare.
type CompareRequest struct {
	ProjectA EvaluateRequest `json:"project_a"`
	ProjectB EvaluateRequest `json:"project_b"`
}

// CompareResponse is the response body for POST /compare.
type CompareResponse struct {
	ID        string `json:"id"`
	Report    string `json:"report"`
	Winner    string `json:"winner"`
	Rationale string `json:"rationale"`
}

func (req EvaluateRequest) projectInput() types.ProjectInput {
	return types.ProjectInput{
		Name:        req.Name,
		Synopsis:    req.Synopsis,
		CodeContext: req.CodeContext,
	}
}

// evaluationMode resolves the requested mode, defaulting to a standard
// single evaluation. Comparison is only reachable through /compare.
func (req EvaluateRequest) evaluationMode() (types.EvaluationMode, error) {
	if req.Mode == "" {
		return types.ModeSingle, nil
	}
	mode := types.EvaluationMode(req.Mode)
	if !mode.Valid() || mode == types.ModeComparison {
		return "", &evaluation.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: single, code, patentability",
		}
	}
	return mode, nil
}

// handleEvaluate evaluates a single project
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	mode, err := req.evaluationMode()
	if err != nil {
		s.evaluationErrorResponse(w, err)
		return
	}

	rep, err := s.evaluator.Evaluate(r.Context(), req.projectInput(), mode)
	if err != nil {
		s.evaluationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, EvaluateResponse{
		ID:         uuid.New().String(),
		Report:     report.Single(rep),
		Scores:     rep.Scores,
		Model:      rep.Model,
		TokensUsed: rep.TokensUsed,
	})
}

// handleEvaluateBatch evaluates multiple projects concurrently
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	inputs := make([]types.ProjectInput, len(req.Projects))
	for i, p := range req.Projects {
		inputs[i] = p.projectInput()
	}

	summary, err := s.evaluator.EvaluateBatch(r.Context(), inputs)
	if err != nil {
		s.evaluationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{
		ID:             uuid.New().String(),
		Report:         report.Batch(summary),
		Succeeded:      summary.Succeeded,
		Failed:         summary.Failed,
		AverageOverall: summary.AverageOverall,
	})
}

// handleCompare evaluates two projects and compares them
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.evaluator.Compare(r.Context(), req.ProjectA.projectInput(), req.ProjectB.projectInput())
	if err != nil {
		s.evaluationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CompareResponse{
		ID:        uuid.New().String(),
		Report:    report.Comparison(result),
		Winner:    string(result.Winner),
		Rationale: result.Rationale,
	})
}

// evaluationErrorResponse maps evaluation errors to HTTP status codes.
// Validation failures are the caller's fault; upstream analysis failures
// surface as a bad gateway.
func (s *Server) evaluationErrorResponse(w http.ResponseWriter, err error) {
	var validationErr *evaluation.ValidationError
	if errors.As(err, &validationErr) {
		s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var upstreamErr *evaluation.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Printf("Upstream evaluation failure: %v", err)
		s.errorResponse(w, http.StatusBadGateway, upstreamErr.Error())
		return
	}

	log.Printf("Evaluation failed: %v", err)
	s.errorResponse(w, http.StatusInternalServerError, "Evaluation failed: "+err.Error())
}
