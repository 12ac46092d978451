package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

// Service resolves documentation ids and aggregates categories.
type Service struct {
	repo    Repository
	lookups *prometheus.CounterVec
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches a lookups counter vec with labels "kind" and "result".
func (s *Service) WithMetrics(lookups *prometheus.CounterVec) *Service {
	s.lookups = lookups
	return s
}

// Get returns the full document. Unknown ids yield a *domain.NotFoundError
// matching domain.ErrDocumentNotFound.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		s.record("miss")
		if errors.Is(err, domain.ErrNotFound) {
			return domdoc.Document{}, err
		}
		return domdoc.Document{}, fmt.Errorf("get document %q: %w", id, err)
	}
	s.record("hit")
	return doc, nil
}

// Categories returns the sorted distinct categories of the live corpus.
func (s *Service) Categories(ctx context.Context) []string {
	return s.repo.Categories(ctx)
}

// Complete suggests document ids containing partial.
func (s *Service) Complete(ctx context.Context, partial string) []string {
	return s.repo.CompleteIDs(ctx, partial)
}

// Count returns the corpus size.
func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *Service) record(res string) {
	if s.lookups != nil {
		s.lookups.WithLabelValues("document", res).Inc()
	}
}
