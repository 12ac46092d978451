package example

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domex "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/example"
)

// Service looks up example snippets.
type Service struct {
	repo    Repository
	lookups *prometheus.CounterVec
}

// New creates an example service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches a lookups counter vec with labels "kind" and "result".
func (s *Service) WithMetrics(lookups *prometheus.CounterVec) *Service {
	s.lookups = lookups
	return s
}

// Get returns an example. On a miss the error is a *domain.NotFoundError whose
// Available() lists every known name.
func (s *Service) Get(ctx context.Context, name string) (domex.Example, error) {
	ex, err := s.repo.Get(ctx, name)
	if err != nil {
		s.record("miss")
		if errors.Is(err, domain.ErrNotFound) {
			return domex.Example{}, err
		}
		return domex.Example{}, fmt.Errorf("get example %q: %w", name, err)
	}
	s.record("hit")
	return ex, nil
}

// Names returns every known example name in catalog order.
func (s *Service) Names(ctx context.Context) []string {
	return s.repo.Names(ctx)
}

// Complete suggests example names containing partial.
func (s *Service) Complete(ctx context.Context, partial string) []string {
	return s.repo.CompleteNames(ctx, partial)
}

func (s *Service) record(res string) {
	if s.lookups != nil {
		s.lookups.WithLabelValues("example", res).Inc()
	}
}
