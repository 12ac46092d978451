package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain/search/result"
	domstats "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
)

func TestFromSearch_CountMatchesResults(t *testing.T) {
	resp := result.Response{
		Query: "tools",
		Results: []result.Result{
			result.New("tools", "NextMCP Tools", "primitives", []string{"tools"}, "short"),
			result.New("prompts", "NextMCP Prompts", "primitives", nil, "body"),
		},
	}

	got := FromSearch(resp)

	assert.Equal(t, "tools", got.Query)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "short...", got.Results[0].Preview)
	assert.Equal(t, []string{}, got.Results[1].Tags)
}

func TestFromSearch_EmptyMarshalsArray(t *testing.T) {
	b, err := json.Marshal(FromSearch(result.Response{Query: "zzz"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"zzz","count":0,"results":[]}`, string(b))
}

func TestFromDocument_FieldOrder(t *testing.T) {
	doc := domdoc.Reconstruct("tools", "T", "C", "primitives", []string{"a"})

	b, err := json.Marshal(FromDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"tools","title":"T","content":"C","category":"primitives","tags":["a"]}`, string(b))
}

func TestFromNotFound(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		err := fmt.Errorf("get document: %w", domain.NewDocumentNotFound("nonexistent"))

		resp, ok := FromNotFound(err)
		require.True(t, ok)
		assert.Equal(t, "Documentation 'nonexistent' not found", resp.Error)

		b, _ := json.Marshal(resp)
		assert.JSONEq(t, `{"error":"Documentation 'nonexistent' not found"}`, string(b))
		assert.False(t, strings.Contains(string(b), "title"))
	})

	t.Run("example", func(t *testing.T) {
		err := domain.NewExampleNotFound("unknown-name", []string{"simple-tool", "auth-setup"})

		resp, ok := FromNotFound(err)
		require.True(t, ok)
		assert.Equal(t, "Example 'unknown-name' not found", resp.Error)
		assert.Equal(t, []string{"simple-tool", "auth-setup"}, resp.Available)
	})

	t.Run("other", func(t *testing.T) {
		_, ok := FromNotFound(domain.ErrInvalidEntry)
		assert.False(t, ok)
	})
}

func TestFromStats(t *testing.T) {
	b, err := json.Marshal(FromStats(domstats.Snapshot{TotalDocs: 8, TotalSearches: 3}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"total_docs":8,"total_searches":3,"categories":[],"available_examples":[]}`,
		string(b))
}
