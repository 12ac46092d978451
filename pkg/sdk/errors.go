package docserver

import "github.com/KeshavVarad/nextmcp-docs-server/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	ErrExampleNotFound  = domain.ErrExampleNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrInvalidEntry     = domain.ErrInvalidEntry
)

// NotFoundError carries the missed identifier and, for examples, every known name.
// Use errors.As() to inspect.
type NotFoundError = domain.NotFoundError
