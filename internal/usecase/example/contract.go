package example

import (
	"context"

	domex "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/example"
)

// Repository is the read side of the example catalog.
type Repository interface {
	Get(ctx context.Context, name string) (domex.Example, error)
	Names(ctx context.Context) []string
	CompleteNames(ctx context.Context, partial string) []string
}
