package document

import (
	"context"

	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

// Repository is the read side of the corpus store.
type Repository interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Categories(ctx context.Context) []string
	CompleteIDs(ctx context.Context, partial string) []string
	Count(ctx context.Context) int
}
