package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

// Resource URIs.
const (
	StatsURI           = "docs://stats"
	DocTemplateURI     = "docs://{doc_id}"
	ExampleTemplateURI = "examples://{example_name}"

	docScheme     = "docs://"
	exampleScheme = "examples://"
	jsonMIME      = "application/json"
)

type resourceEntry struct {
	def    mcp.Resource
	handle func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

type templateEntry struct {
	def    mcp.ResourceTemplate
	handle func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

func (h *Host) resources() []resourceEntry {
	return []resourceEntry{
		{
			def: mcp.NewResource(StatsURI, "stats",
				mcp.WithResourceDescription("Documentation server statistics"),
				mcp.WithMIMEType(jsonMIME),
			),
			handle: h.handleStats,
		},
	}
}

func (h *Host) templates() []templateEntry {
	return []templateEntry{
		{
			def: mcp.NewResourceTemplate(DocTemplateURI, "doc",
				mcp.WithTemplateDescription("Get specific documentation by ID"),
				mcp.WithTemplateMIMEType(jsonMIME),
			),
			handle: h.handleDocResource,
		},
		{
			def: mcp.NewResourceTemplate(ExampleTemplateURI, "example",
				mcp.WithTemplateDescription("Get example code"),
				mcp.WithTemplateMIMEType(jsonMIME),
			),
			handle: h.handleExampleResource,
		},
	}
}

func (h *Host) handleStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, api.FromStats(h.stats.Snapshot(ctx)))
}

func (h *Host) handleDocResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := strings.TrimPrefix(req.Params.URI, docScheme)
	return jsonContents(req.Params.URI, h.fullDoc(ctx, id))
}

func (h *Host) handleExampleResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := strings.TrimPrefix(req.Params.URI, exampleScheme)
	return jsonContents(req.Params.URI, h.exampleCode(ctx, name))
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	text, err := jsonText(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: jsonMIME, Text: text},
	}, nil
}
