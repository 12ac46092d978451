package search

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain/search/result"
	logpkg "github.com/KeshavVarad/nextmcp-docs-server/internal/logger"
)

// Service runs substring search over the corpus.
type Service struct {
	repo    Repository
	counter Counter

	searches prometheus.Counter
	hits     prometheus.Observer
}

// New creates a search service.
func New(repo Repository, counter Counter) *Service {
	return &Service{repo: repo, counter: counter}
}

// WithMetrics attaches Prometheus collectors. Either may be nil.
func (s *Service) WithMetrics(searches prometheus.Counter, hits prometheus.Observer) *Service {
	s.searches = searches
	s.hits = hits
	return s
}

// Search returns every document whose title or content contains the query
// (case-insensitive) or whose tags contain the lowercased query verbatim.
// Results keep corpus order. An empty query matches everything.
// The search counter is incremented exactly once per call.
func (s *Service) Search(ctx context.Context, query string) result.Response {
	total := s.counter.Inc()

	q := strings.ToLower(query)
	docs := s.repo.List(ctx)
	results := make([]result.Result, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		if matches(d, q) {
			results = append(results, result.New(d.ID(), d.Title(), d.Category(), d.Tags(), d.Content()))
		}
	}

	if s.searches != nil {
		s.searches.Inc()
	}
	if s.hits != nil {
		s.hits.Observe(float64(len(results)))
	}

	logpkg.FromContext(ctx).Debug("search",
		zap.String("query", query),
		zap.Int("count", len(results)),
		zap.Int64("total_searches", total),
	)

	return result.Response{Query: query, Results: results}
}

// matches applies the three match rules. Tags are compared without lowering
// them; the corpus keeps tags lowercase.
func matches(d *domdoc.Document, q string) bool {
	if strings.Contains(strings.ToLower(d.Title()), q) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Content()), q) {
		return true
	}
	for _, tag := range d.Tags() {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}
