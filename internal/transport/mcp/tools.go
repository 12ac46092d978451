package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

// Tool names.
const (
	ToolSearch               = "search_documentation"
	ToolGetFullDoc           = "get_full_doc"
	ToolListCategories       = "list_categories"
	ToolGetExampleCode       = "get_example_code"
	ToolCompleteDocIDs       = "complete_doc_ids"
	ToolCompleteExampleNames = "complete_example_names"
)

type toolEntry struct {
	def    mcp.Tool
	handle func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func (h *Host) tools() []toolEntry {
	return []toolEntry{
		{
			def: mcp.NewTool(ToolSearch,
				mcp.WithDescription("Search NextMCP documentation for relevant articles."),
				mcp.WithString("query", mcp.Required(),
					mcp.Description(`Search query (e.g., "tools", "authentication", "deployment")`)),
			),
			handle: h.handleSearch,
		},
		{
			def: mcp.NewTool(ToolGetFullDoc,
				mcp.WithDescription("Get the complete documentation for a specific topic."),
				mcp.WithString("doc_id", mcp.Required(),
					mcp.Description(`Document ID (e.g., "tools", "deployment", "examples")`)),
			),
			handle: h.handleGetFullDoc,
		},
		{
			def: mcp.NewTool(ToolListCategories,
				mcp.WithDescription("List all documentation categories."),
			),
			handle: h.handleListCategories,
		},
		{
			def: mcp.NewTool(ToolGetExampleCode,
				mcp.WithDescription("Get example code for common NextMCP patterns."),
				mcp.WithString("example_name", mcp.Required(),
					mcp.Description(`Example to retrieve (e.g., "simple-tool", "auth-setup", "resource-template")`)),
			),
			handle: h.handleGetExampleCode,
		},
		{
			def: mcp.NewTool(ToolCompleteDocIDs,
				mcp.WithDescription("Suggest documentation IDs containing a partial string."),
				mcp.WithString("partial", mcp.Description("Partial document ID; empty lists all")),
			),
			handle: h.handleCompleteDocIDs,
		},
		{
			def: mcp.NewTool(ToolCompleteExampleNames,
				mcp.WithDescription("Suggest example names containing a partial string."),
				mcp.WithString("partial", mcp.Description("Partial example name; empty lists all")),
			),
			handle: h.handleCompleteExampleNames,
		},
	}
}

func (h *Host) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonToolResult(api.FromSearch(h.search.Search(ctx, query)))
}

func (h *Host) handleGetFullDoc(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("doc_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonToolResult(h.fullDoc(ctx, id))
}

func (h *Host) handleListCategories(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonToolResult(h.documents.Categories(ctx))
}

func (h *Host) handleGetExampleCode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("example_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonToolResult(h.exampleCode(ctx, name))
}

func (h *Host) handleCompleteDocIDs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonToolResult(h.documents.Complete(ctx, req.GetString("partial", "")))
}

func (h *Host) handleCompleteExampleNames(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonToolResult(h.examples.Complete(ctx, req.GetString("partial", "")))
}

// fullDoc returns the document payload or the lookup-miss payload.
func (h *Host) fullDoc(ctx context.Context, id string) any {
	doc, err := h.documents.Get(ctx, id)
	if err != nil {
		return missPayload(err)
	}
	return api.FromDocument(doc)
}

// exampleCode returns the example payload or the lookup-miss payload.
func (h *Host) exampleCode(ctx context.Context, name string) any {
	ex, err := h.examples.Get(ctx, name)
	if err != nil {
		return missPayload(err)
	}
	return api.FromExample(ex)
}

func missPayload(err error) any {
	if resp, ok := api.FromNotFound(err); ok {
		return resp
	}
	return api.ErrorResponse{Error: fmt.Sprintf("lookup failed: %v", err)}
}
