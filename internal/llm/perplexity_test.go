package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perplexityResponse(content string, tokens int) map[string]any {
	return map[string]any{
		"model": "sonar",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	}
}

func TestPerplexityClient_Analyze(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(perplexityResponse("OVERALL SCORE: 80/100", 512))
	}))
	defer server.Close()

	cfg := DefaultPerplexityConfig().WithSystemPrompt("You are an evaluator.")
	client, err := NewPerplexityClient(cfg, "test-key")
	require.NoError(t, err)
	client.WithBaseURL(server.URL)

	analysis, err := client.Analyze(context.Background(), "Evaluate this project.")
	require.NoError(t, err)

	assert.Equal(t, "OVERALL SCORE: 80/100", analysis.Text)
	assert.Equal(t, 512, analysis.TokensUsed)
	assert.Equal(t, "sonar", analysis.Model)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "sonar", gotReq.Model)
	assert.False(t, gotReq.Stream)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "You are an evaluator.", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "Evaluate this project.", gotReq.Messages[1].Content)
}

func TestPerplexityClient_NoSystemPrompt(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(perplexityResponse("ok", 1))
	}))
	defer server.Close()

	client, err := NewPerplexityClient(DefaultPerplexityConfig(), "test-key")
	require.NoError(t, err)
	client.WithBaseURL(server.URL)

	_, err = client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)

	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestPerplexityClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client, err := NewPerplexityClient(DefaultPerplexityConfig(), "test-key")
	require.NoError(t, err)
	client.WithBaseURL(server.URL)

	_, err = client.Analyze(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestPerplexityClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"model": "sonar", "choices": []any{}})
	}))
	defer server.Close()

	client, err := NewPerplexityClient(DefaultPerplexityConfig(), "test-key")
	require.NoError(t, err)
	client.WithBaseURL(server.URL)

	_, err = client.Analyze(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestPerplexityClient_RequiresAPIKey(t *testing.T) {
	_, err := NewPerplexityClient(DefaultPerplexityConfig(), "")
	assert.Error(t, err)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = Provider("openai")

	_, err := NewClient(context.Background(), cfg, "key")
	assert.Error(t, err)
}

func TestNewClient_Perplexity(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultPerplexityConfig(), "key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, ok := client.(*PerplexityClient)
	assert.True(t, ok)
}
