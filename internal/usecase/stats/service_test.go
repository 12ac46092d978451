package stats

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	domstats "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
	docrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/document"
	exrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/example"
)

// --- Mocks ---

type mockCorpus struct {
	count      int
	categories []string
}

func (m *mockCorpus) Count(_ context.Context) int           { return m.count }
func (m *mockCorpus) Categories(_ context.Context) []string { return m.categories }

type mockCatalog struct {
	names []string
}

func (m *mockCatalog) Names(_ context.Context) []string { return m.names }

// --- Tests ---

func TestSnapshot_CombinesSources(t *testing.T) {
	var counter domstats.Counter
	counter.Inc()
	counter.Inc()

	svc := New(
		&mockCorpus{count: 3, categories: []string{"a", "b"}},
		&mockCatalog{names: []string{"x"}},
		&counter,
	)

	got := svc.Snapshot(context.Background())
	want := domstats.Snapshot{
		TotalDocs:         3,
		TotalSearches:     2,
		Categories:        []string{"a", "b"},
		AvailableExamples: []string{"x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_DoesNotIncrementCounter(t *testing.T) {
	var counter domstats.Counter
	svc := New(&mockCorpus{}, &mockCatalog{}, &counter)

	svc.Snapshot(context.Background())
	svc.Snapshot(context.Background())

	if counter.Load() != 0 {
		t.Errorf("counter = %d, want 0", counter.Load())
	}
}

func TestSnapshot_EmbeddedData(t *testing.T) {
	docs, err := docrepo.Default()
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	examples, err := exrepo.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	got := New(docs, examples, &domstats.Counter{}).Snapshot(context.Background())
	want := domstats.Snapshot{
		TotalDocs:         8,
		Categories:        []string{"deployment", "examples", "guide", "middleware", "primitives", "security"},
		AvailableExamples: []string{"simple-tool", "auth-setup", "resource-template"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}
