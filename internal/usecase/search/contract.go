package search

import (
	"context"

	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

// Repository lists the corpus in its insertion order.
type Repository interface {
	List(ctx context.Context) []domdoc.Document
}

// Counter records one search call. Implementations must be safe for concurrent use.
type Counter interface {
	Inc() int64
}
