package stats

import (
	"context"

	domstats "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
)

// Service handles statistics reporting.
type Service struct {
	corpus   CorpusReader
	catalog  CatalogReader
	searches CounterReader
}

// New creates a Service.
func New(corpus CorpusReader, catalog CatalogReader, searches CounterReader) *Service {
	return &Service{corpus: corpus, catalog: catalog, searches: searches}
}

// Snapshot reads the current statistics. The search counter is read, never
// incremented.
func (s *Service) Snapshot(ctx context.Context) domstats.Snapshot {
	return domstats.Snapshot{
		TotalDocs:         s.corpus.Count(ctx),
		TotalSearches:     s.searches.Load(),
		Categories:        s.corpus.Categories(ctx),
		AvailableExamples: s.catalog.Names(ctx),
	}
}
