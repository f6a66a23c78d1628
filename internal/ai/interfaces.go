package ai

import (
	"context"

	"narrativeradar/internal/models"
)

// Summarizer writes a short executive summary for the report. Optional: when
// no API key is configured the report keeps its static summary text.
type Summarizer interface {
	Summarize(ctx context.Context, narratives []models.Narrative) (string, error)
}
