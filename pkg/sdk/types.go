package docserver

import "github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"

// Result types share their shape with the MCP and HTTP payloads.
type (
	// SearchResponse is the outcome of one search.
	SearchResponse = api.SearchResponse
	// SearchResult is one search hit.
	SearchResult = api.SearchResult
	// Document is a full documentation article.
	Document = api.Document
	// Example is a runnable code example.
	Example = api.Example
	// Stats is a snapshot of server statistics.
	Stats = api.Stats
)
