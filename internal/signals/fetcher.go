package signals

import (
	"context"

	"narrativeradar/internal/models"
)

// MultiSourceFetcher aggregates signals from multiple sources. A failing
// source never fails the run: it contributes nothing and is logged as a
// warning, so a partial report can still be produced.
type MultiSourceFetcher struct {
	sources []Source
	logger  Logger
}

func NewMultiSourceFetcher(sources []Source, logger Logger) *MultiSourceFetcher {
	return &MultiSourceFetcher{
		sources: sources,
		logger:  logger,
	}
}

// FetchAll collects signals from every source sequentially, in the order the
// sources were registered. The returned slice preserves fetch order.
func (f *MultiSourceFetcher) FetchAll(ctx context.Context) []models.Signal {
	var all []models.Signal

	for _, source := range f.sources {
		sigs, err := source.FetchSignals(ctx)
		if err != nil {
			f.logger.Warn("source unavailable, continuing without it", "source", source.Name(), "error", err)
			continue
		}
		f.logger.Info("collected signals", "source", source.Name(), "count", len(sigs))
		all = append(all, sigs...)
	}

	return all
}
