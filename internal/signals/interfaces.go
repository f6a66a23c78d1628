package signals

import (
	"context"

	"narrativeradar/internal/models"
)

// Source fetches signals from one upstream (GitHub, on-chain RPC, curated
// research).
type Source interface {
	Name() string
	FetchSignals(ctx context.Context) ([]models.Signal, error)
}

type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}
