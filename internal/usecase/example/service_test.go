package example

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domex "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/example"
	exrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/example"
)

func newService(t *testing.T) *Service {
	t.Helper()
	repo, err := exrepo.Default()
	require.NoError(t, err)
	return New(repo)
}

func TestGet_Hit(t *testing.T) {
	ex, err := newService(t).Get(context.Background(), "simple-tool")
	require.NoError(t, err)
	assert.Equal(t, "Basic tool implementation", ex.Description())
	assert.Contains(t, ex.Code(), "def calculate(x: float, y: float, operation: str) -> float:")
}

func TestGet_MissOffersAvailable(t *testing.T) {
	_, err := newService(t).Get(context.Background(), "unknown-name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExampleNotFound))

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.ElementsMatch(t, []string{"simple-tool", "auth-setup", "resource-template"}, nf.Available())
	assert.NotContains(t, nf.Available(), "unknown-name")
	assert.Equal(t, "Example 'unknown-name' not found", err.Error())
}

func TestNamesAndComplete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	assert.Equal(t, []string{"simple-tool", "auth-setup", "resource-template"}, svc.Names(ctx))
	assert.Equal(t, []string{"auth-setup"}, svc.Complete(ctx, "auth"))
	assert.Len(t, svc.Complete(ctx, ""), 3)
}

func TestGet_RecordsLookups(t *testing.T) {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_example_lookups_total"}, []string{"kind", "result"})
	svc := newService(t).WithMetrics(lookups)

	_, _ = svc.Get(context.Background(), "auth-setup")
	_, _ = svc.Get(context.Background(), "nope")

	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("example", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(lookups.WithLabelValues("example", "miss")))
}

type failingRepo struct{ err error }

func (f *failingRepo) Get(_ context.Context, _ string) (domex.Example, error) { return domex.Example{}, f.err }
func (f *failingRepo) Names(_ context.Context) []string { return nil }
func (f *failingRepo) CompleteNames(_ context.Context, _ string) []string { return nil }

func TestGet_RepoFailureIsWrapped(t *testing.T) {
	_, err := New(&failingRepo{err: errors.New("boom")}).Get(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, `get example "x": boom`, err.Error())
}
