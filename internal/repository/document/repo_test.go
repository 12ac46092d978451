package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

func testDoc(t *testing.T, id, category string) domdoc.Document {
	t.Helper()
	d, err := domdoc.New(id, strings.ToUpper(id), "body of "+id, category, []string{id})
	require.NoError(t, err)
	return d
}

func TestDefault_LoadsCorpusInOrder(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, []string{
		"getting-started", "tools", "prompts", "resources",
		"deployment", "examples", "authentication", "middleware",
	}, repo.IDs(ctx))
	assert.Equal(t, 8, repo.Count(ctx))

	tools, err := repo.Get(ctx, "tools")
	require.NoError(t, err)
	assert.Equal(t, "NextMCP Tools", tools.Title())
	assert.Equal(t, "primitives", tools.Category())
	assert.Equal(t, []string{"tools", "primitives", "api"}, tools.Tags())
	assert.True(t, strings.HasPrefix(tools.Content(), "Tools are model-driven actions"))
	assert.True(t, strings.HasSuffix(tools.Content(), "- Provide type hints\n"))
}

func TestDefault_Categories(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"deployment", "examples", "guide", "middleware", "primitives", "security"},
		repo.Categories(context.Background()),
	)
}

func TestGet_NotFound(t *testing.T) {
	repo, err := New([]domdoc.Document{testDoc(t, "tools", "primitives")})
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "Tools")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDocumentNotFound))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Documentation 'Tools' not found", err.Error())
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]domdoc.Document{testDoc(t, "a", "x"), testDoc(t, "a", "y")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
}

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := New([]domdoc.Document{domdoc.Reconstruct("", "t", "c", "g", nil)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEntry))
}

func TestList_PreservesOrder(t *testing.T) {
	repo, err := New([]domdoc.Document{
		testDoc(t, "zeta", "a"), testDoc(t, "alpha", "b"), testDoc(t, "mid", "a"),
	})
	require.NoError(t, err)

	var ids []string
	for _, d := range repo.List(context.Background()) {
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ids)
	assert.Equal(t, []string{"a", "b"}, repo.Categories(context.Background()))
}

func TestCompleteIDs(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, []string{"prompts", "deployment", "examples"}, repo.CompleteIDs(ctx, "p"))
	assert.Equal(t, []string{"tools"}, repo.CompleteIDs(ctx, "tool"))
	assert.Len(t, repo.CompleteIDs(ctx, ""), 8)
	assert.Empty(t, repo.CompleteIDs(ctx, "TOOL"))
}

func TestPing(t *testing.T) {
	empty, err := New(nil)
	require.NoError(t, err)
	assert.Error(t, empty.Ping(context.Background()))

	repo, err := Default()
	require.NoError(t, err)
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestLoad_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"index.yaml": {Data: []byte("documents:\n  - id: one\n    title: One\n    category: guide\n    tags: [a]\n")},
		"one.md":     {Data: []byte("hello\n")},
	}

	repo, err := Load(fsys)
	require.NoError(t, err)

	d, err := repo.Get(context.Background(), "one")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", d.Content())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing index", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{"index.yaml": {Data: []byte("documents: [")}}},
		{"missing body", fstest.MapFS{
			"index.yaml": {Data: []byte("documents:\n  - id: one\n    title: One\n    category: guide\n")},
		}},
		{"invalid entry", fstest.MapFS{
			"index.yaml": {Data: []byte("documents:\n  - id: one\n    category: guide\n")},
			"one.md":     {Data: []byte("x")},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.fsys)
			assert.Error(t, err)
		})
	}
}
