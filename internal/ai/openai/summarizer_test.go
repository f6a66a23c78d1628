package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"narrativeradar/internal/models"
)

func newMockedSummarizer(serverURL string) *Summarizer {
	s := NewSummarizer("test-key", "")
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = serverURL + "/v1"
	s.client = openai.NewClientWithConfig(cfg)
	return s
}

func TestSummarize(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "  Agents lead this cycle.  "}},
			},
		})
	}))
	defer server.Close()

	s := newMockedSummarizer(server.URL)

	summary, err := s.Summarize(context.Background(), []models.Narrative{
		{Name: "AI Agents & Autonomous Trading", Strength: 72, Confidence: 85, Momentum: "rising"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Agents lead this cycle.", summary, "whitespace is trimmed")
	assert.Equal(t, openai.GPT4oMini, gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "AI Agents & Autonomous Trading: strength 72/100")
}

func TestSummarizeEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	s := newMockedSummarizer(server.URL)

	_, err := s.Summarize(context.Background(), nil)
	require.Error(t, err)
}

func TestSummarizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "requests"}}`))
	}))
	defer server.Close()

	s := newMockedSummarizer(server.URL)

	_, err := s.Summarize(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize narratives")
}
