package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCmd_JSON(t *testing.T) {
	out, err := run(t, "search", "docker", "--format", "json")
	require.NoError(t, err)

	var resp api.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "docker", resp.Query)
	assert.Equal(t, len(resp.Results), resp.Count)
	assert.NotZero(t, resp.Count)
}

func TestDocCmd(t *testing.T) {
	out, err := run(t, "doc", "tools", "-f", "json")
	require.NoError(t, err)

	var doc api.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "tools", doc.ID)
	assert.Equal(t, "primitives", doc.Category)
}

func TestDocCmd_Miss(t *testing.T) {
	out, err := run(t, "doc", "nonexistent", "-f", "json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
	assert.JSONEq(t, `{"error":"Documentation 'nonexistent' not found"}`, out)
}

func TestExampleCmd_MissListsAvailable(t *testing.T) {
	out, err := run(t, "example", "nope", "-f", "json")
	require.ErrorIs(t, err, errReported)

	var miss api.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(out), &miss))
	assert.Equal(t, "Example 'nope' not found", miss.Error)
	assert.Equal(t, []string{"simple-tool", "auth-setup", "resource-template"}, miss.Available)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Equal(t, "deployment\nexamples\nguide\nmiddleware\nprimitives\nsecurity\n", out)
}

func TestPromptCmd(t *testing.T) {
	out, err := run(t, "prompt", "build-server", "tool-based", "--features", "auth")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 3: Add Authentication")
	assert.NotContains(t, out, "Step 4: Add Metrics")

	out, err = run(t, "prompt", "debug", "deployment-error")
	require.NoError(t, err)
	assert.Contains(t, out, "Debugging deployment issues:")

	out, err = run(t, "prompt", "learn", "tools", "-f", "json")
	require.NoError(t, err)
	var pr api.Prompt
	require.NoError(t, json.Unmarshal([]byte(out), &pr))
	assert.Equal(t, "learn_prompt", pr.Name)
	assert.True(t, strings.HasPrefix(pr.Text, "Learning path for: tools (overview style)"))
}

func TestStatsCmd(t *testing.T) {
	out, err := run(t, "stats", "-f", "json")
	require.NoError(t, err)

	var s api.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 8, s.TotalDocs)
	assert.Equal(t, int64(0), s.TotalSearches)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "categories", "-f", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
