package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"narrativeradar/internal/models"
)

// Summarizer implements ai.Summarizer using the OpenAI chat API.
type Summarizer struct {
	client *openai.Client
	model  string
}

func NewSummarizer(apiKey, model string) *Summarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Summarizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, narratives []models.Narrative) (string, error) {
	var b strings.Builder
	b.WriteString("You are an analyst covering the Solana ecosystem. Write one short paragraph (3-4 sentences) summarizing the current narrative landscape for a builder audience, based on these scored narratives:\n\n")
	for _, n := range narratives {
		fmt.Fprintf(&b, "- %s: strength %d/100, confidence %.0f%%, momentum %s, %d signals\n",
			n.Name, n.Strength, n.Confidence, n.Momentum, len(n.Evidence))
	}
	b.WriteString("\nBe concrete and avoid hype. Plain text only.")

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize narratives: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
