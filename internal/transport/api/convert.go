package api

import (
	"errors"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
	domex "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/example"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain/search/result"
	domstats "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
)

// FromSearch converts a search response.
func FromSearch(resp result.Response) SearchResponse {
	items := make([]SearchResult, len(resp.Results))
	for i := range resp.Results {
		r := &resp.Results[i]
		items[i] = SearchResult{
			ID:       r.ID(),
			Title:    r.Title(),
			Category: r.Category(),
			Tags:     nonNil(r.Tags()),
			Preview:  r.Preview(),
		}
	}
	return SearchResponse{Query: resp.Query, Count: len(items), Results: items}
}

// FromDocument converts a document.
func FromDocument(d domdoc.Document) Document {
	return Document{
		ID:       d.ID(),
		Title:    d.Title(),
		Content:  d.Content(),
		Category: d.Category(),
		Tags:     nonNil(d.Tags()),
	}
}

// FromExample converts an example.
func FromExample(e domex.Example) Example {
	return Example{Description: e.Description(), Code: e.Code()}
}

// FromStats converts a statistics snapshot.
func FromStats(s domstats.Snapshot) Stats {
	return Stats{
		TotalDocs:         s.TotalDocs,
		TotalSearches:     s.TotalSearches,
		Categories:        nonNil(s.Categories),
		AvailableExamples: nonNil(s.AvailableExamples),
	}
}

// FromNotFound renders a lookup miss. ok is false for any other error.
func FromNotFound(err error) (ErrorResponse, bool) {
	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) {
		return ErrorResponse{}, false
	}
	resp := ErrorResponse{Error: nfe.Error()}
	if errors.Is(err, domain.ErrExampleNotFound) {
		resp.Available = nonNil(nfe.Available())
	}
	return resp, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
