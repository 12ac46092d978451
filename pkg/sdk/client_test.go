package docserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestSearch(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	resp := c.Search(ctx, "docker")
	assert.Equal(t, "docker", resp.Query)
	assert.Equal(t, len(resp.Results), resp.Count)
	require.NotEmpty(t, resp.Results)
	for _, r := range resp.Results {
		assert.True(t, strings.HasSuffix(r.Preview, "..."), r.ID)
	}

	all := c.Search(ctx, "")
	assert.Equal(t, 8, all.Count)
	assert.Equal(t, "getting-started", all.Results[0].ID)
}

func TestDoc(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	doc, err := c.Doc(ctx, "tools")
	require.NoError(t, err)
	assert.Equal(t, "NextMCP Tools", doc.Title)
	assert.Equal(t, "primitives", doc.Category)

	_, err = c.Doc(ctx, "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Documentation 'nonexistent' not found", err.Error())
}

func TestExample(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	ex, err := c.Example(ctx, "auth-setup")
	require.NoError(t, err)
	assert.Equal(t, "API key authentication setup", ex.Description)
	assert.NotEmpty(t, ex.Code)

	_, err = c.Example(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExampleNotFound))
	assert.Equal(t, "Example 'missing' not found", err.Error())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID())
	assert.Equal(t, []string{"simple-tool", "auth-setup", "resource-template"}, nf.Available())
}

func TestCategoriesAndCompletion(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	assert.Equal(t,
		[]string{"deployment", "examples", "guide", "middleware", "primitives", "security"},
		c.Categories(ctx))
	assert.Equal(t, []string{"getting-started"}, c.CompleteDocIDs(ctx, "ing"))
	assert.Equal(t, []string{"resource-template"}, c.CompleteExampleNames(ctx, "template"))
	assert.Empty(t, c.CompleteDocIDs(ctx, "zzz"))
}

func TestPrompts(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	build := c.BuildServerPrompt(ctx, "tool-based", "auth,metrics")
	assert.Contains(t, build, "Step 3: Add Authentication")
	assert.Contains(t, build, "Step 4: Add Metrics")

	assert.Contains(t, c.DebugPrompt(ctx, "auth-failing"), "Debugging authentication:")
	assert.True(t, strings.HasPrefix(
		c.LearnPrompt(ctx, "tools", ""),
		"Learning path for: tools (overview style)"))
}

func TestStats_CountsSearchesPerClient(t *testing.T) {
	c := newTestClient(t)
	other := newTestClient(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Search(ctx, "tool")
		}()
	}
	wg.Wait()

	s := c.Stats(ctx)
	assert.Equal(t, 8, s.TotalDocs)
	assert.Equal(t, int64(20), s.TotalSearches)
	assert.Equal(t, []string{"simple-tool", "auth-setup", "resource-template"}, s.AvailableExamples)
	assert.Equal(t, int64(0), other.Stats(ctx).TotalSearches)
}

func TestHealth(t *testing.T) {
	h := newTestClient(t).Health(context.Background())
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, map[string]string{"corpus": "ok", "examples": "ok"}, h.Checks)
}

func TestNew_CustomData(t *testing.T) {
	corpus := fstest.MapFS{
		"index.yaml": {Data: []byte("documents:\n  - id: one\n    title: One\n    category: guide\n    tags: [a]\n")},
		"one.md":     {Data: []byte("hello world\n")},
	}
	examples := fstest.MapFS{
		"index.yaml": {Data: []byte("examples:\n  - name: hello\n    description: Says hello\n")},
		"hello.py":   {Data: []byte("print('hello')\n")},
	}

	c := newTestClient(t, WithCorpus(corpus), WithExamples(examples))
	ctx := context.Background()

	assert.Equal(t, []string{"guide"}, c.Categories(ctx))
	assert.Equal(t, 1, c.Search(ctx, "world").Count)
	ex, err := c.Example(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Says hello", ex.Description)
}

func TestNew_BadCorpus(t *testing.T) {
	_, err := New(WithCorpus(fstest.MapFS{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load corpus")
}

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newTestClient(t, WithPrometheus(reg), WithLogger(slog.New(slog.DiscardHandler)))
	ctx := context.Background()

	c.Search(ctx, "tool")
	_, _ = c.Doc(ctx, "tools")
	_, _ = c.Doc(ctx, "nope")

	m := c.obs.metrics
	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("search", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("get_doc", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("get_doc", "not_found")), 0)

	// A second client on the same registry reuses the collectors.
	again := newTestClient(t, WithPrometheus(reg))
	again.Search(ctx, "tool")
	assert.InDelta(t, 2, testutil.ToFloat64(m.operations.WithLabelValues("search", "ok")), 0)
}
