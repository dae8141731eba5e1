package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/project-evaluator/internal/evaluation"
	"github.com/jonathan/project-evaluator/internal/types"
)

// fakeService implements EvaluationService with canned responses.
type fakeService struct {
	evaluateFn func(ctx context.Context, input types.ProjectInput, mode types.EvaluationMode) (*types.EvaluationReport, error)
	batchFn    func(ctx context.Context, inputs []types.ProjectInput) (*types.BatchSummary, error)
	compareFn  func(ctx context.Context, a, b types.ProjectInput) (*types.ComparisonResult, error)
}

func (f *fakeService) Evaluate(ctx context.Context, input types.ProjectInput, mode types.EvaluationMode) (*types.EvaluationReport, error) {
	return f.evaluateFn(ctx, input, mode)
}

func (f *fakeService) EvaluateBatch(ctx context.Context, inputs []types.ProjectInput) (*types.BatchSummary, error) {
	return f.batchFn(ctx, inputs)
}

func (f *fakeService) Compare(ctx context.Context, a, b types.ProjectInput) (*types.ComparisonResult, error) {
	return f.compareFn(ctx, a, b)
}

func newTestServer(svc EvaluationService) *Server {
	return &Server{evaluator: svc}
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func scoredReport(name string, overall int) *types.EvaluationReport {
	return &types.EvaluationReport{
		Project: types.ProjectInput{Name: name, Synopsis: "x"},
		Scores:  types.EvaluationScores{Overall: &overall},
		RawText: "OVERALL SCORE: 80/100",
		Model:   "test-model",
	}
}

func TestHandleEvaluate(t *testing.T) {
	var gotMode types.EvaluationMode
	svc := &fakeService{
		evaluateFn: func(_ context.Context, input types.ProjectInput, mode types.EvaluationMode) (*types.EvaluationReport, error) {
			gotMode = mode
			return scoredReport(input.Name, 80), nil
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate", EvaluateRequest{Name: "Widget", Synopsis: "A tool."})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.ModeSingle, gotMode, "mode defaults to single")

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.Report, "# Innovation & Novelty Evaluation: Widget")
	require.NotNil(t, resp.Scores.Overall)
	assert.Equal(t, 80, *resp.Scores.Overall)
	assert.Equal(t, "test-model", resp.Model)
}

func TestHandleEvaluate_ExplicitMode(t *testing.T) {
	var gotMode types.EvaluationMode
	svc := &fakeService{
		evaluateFn: func(_ context.Context, input types.ProjectInput, mode types.EvaluationMode) (*types.EvaluationReport, error) {
			gotMode = mode
			return scoredReport(input.Name, 80), nil
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate", EvaluateRequest{Synopsis: "A tool.", Mode: "patentability"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.ModePatentability, gotMode)
}

func TestHandleEvaluate_InvalidMode(t *testing.T) {
	s := newTestServer(&fakeService{})

	for _, mode := range []string{"comparison", "turbo"} {
		rec := doJSON(t, s, "POST", "/evaluate", EvaluateRequest{Synopsis: "A tool.", Mode: mode})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "mode %s", mode)
	}
}

func TestHandleEvaluate_InvalidBody(t *testing.T) {
	s := newTestServer(&fakeService{})

	req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluate_ValidationError(t *testing.T) {
	svc := &fakeService{
		evaluateFn: func(context.Context, types.ProjectInput, types.EvaluationMode) (*types.EvaluationReport, error) {
			return nil, &evaluation.ValidationError{Field: "synopsis", Message: "synopsis is required"}
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate", EvaluateRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "synopsis")
}

func TestHandleEvaluate_UpstreamError(t *testing.T) {
	svc := &fakeService{
		evaluateFn: func(context.Context, types.ProjectInput, types.EvaluationMode) (*types.EvaluationReport, error) {
			return nil, &evaluation.UpstreamError{Project: "Widget", Message: "analysis request failed", Cause: errors.New("boom")}
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate", EvaluateRequest{Synopsis: "A tool."})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
}

func TestHandleEvaluateBatch(t *testing.T) {
	avg := 80.0
	svc := &fakeService{
		batchFn: func(_ context.Context, inputs []types.ProjectInput) (*types.BatchSummary, error) {
			require.Len(t, inputs, 2)
			return &types.BatchSummary{
				Items: []types.BatchItem{
					{Project: inputs[0], Report: scoredReport(inputs[0].Name, 80)},
					{Project: inputs[1], Err: "quota exceeded"},
				},
				Succeeded:      1,
				Failed:         1,
				AverageOverall: &avg,
			}, nil
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate/batch", BatchRequest{Projects: []EvaluateRequest{
		{Name: "Widget", Synopsis: "A tool."},
		{Name: "Gadget", Synopsis: "Another tool."},
	}})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	require.NotNil(t, resp.AverageOverall)
	assert.InDelta(t, 80.0, *resp.AverageOverall, 0.001)
	assert.Contains(t, resp.Report, "# Batch Innovation & Novelty Evaluation")
	assert.Contains(t, resp.Report, "Error: quota exceeded")
}

func TestHandleEvaluateBatch_Empty(t *testing.T) {
	svc := &fakeService{
		batchFn: func(context.Context, []types.ProjectInput) (*types.BatchSummary, error) {
			return nil, &evaluation.ValidationError{Message: "no projects provided"}
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/evaluate/batch", BatchRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCompare(t *testing.T) {
	svc := &fakeService{
		compareFn: func(_ context.Context, a, b types.ProjectInput) (*types.ComparisonResult, error) {
			return &types.ComparisonResult{
				ReportA:   scoredReport(a.Name, 80),
				ReportB:   scoredReport(b.Name, 60),
				Winner:    types.WinnerA,
				Rationale: "Alpha leads with an overall score of 80/100 vs 60/100",
				Analysis:  "Alpha is stronger.",
			}, nil
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/compare", CompareRequest{
		ProjectA: EvaluateRequest{Name: "Alpha", Synopsis: "a"},
		ProjectB: EvaluateRequest{Name: "Beta", Synopsis: "b"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.Winner)
	assert.Contains(t, resp.Rationale, "Alpha leads")
	assert.Contains(t, resp.Report, "# Project Comparison: Alpha vs Beta")
}

func TestHandleCompare_UpstreamError(t *testing.T) {
	svc := &fakeService{
		compareFn: func(context.Context, types.ProjectInput, types.ProjectInput) (*types.ComparisonResult, error) {
			return nil, &evaluation.UpstreamError{Project: "Beta", Message: "analysis request failed", Cause: errors.New("boom")}
		},
	}
	s := newTestServer(svc)

	rec := doJSON(t, s, "POST", "/compare", CompareRequest{
		ProjectA: EvaluateRequest{Synopsis: "a"},
		ProjectB: EvaluateRequest{Synopsis: "b"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&fakeService{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	s := newTestServer(&fakeService{})

	req := httptest.NewRequest("GET", "/evaluate", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
