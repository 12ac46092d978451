package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound signals an unknown documentation id.
	ErrDocumentNotFound = fmt.Errorf("document %w", ErrNotFound)
	// ErrExampleNotFound signals an unknown example name.
	ErrExampleNotFound = fmt.Errorf("example %w", ErrNotFound)
	// ErrAlreadyExists signals a duplicate key while loading a table.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidEntry signals a malformed document or example.
	ErrInvalidEntry = errors.New("invalid entry")
)

// NotFoundError is the reportable miss returned by lookups.
// Error() is the caller-facing message; Unwrap exposes the sentinel.
type NotFoundError struct {
	kind      error
	id        string
	available []string
}

// NewDocumentNotFound reports an unknown documentation id.
func NewDocumentNotFound(id string) error {
	return &NotFoundError{kind: ErrDocumentNotFound, id: id}
}

// NewExampleNotFound reports an unknown example name along with every known name.
func NewExampleNotFound(name string, available []string) error {
	return &NotFoundError{kind: ErrExampleNotFound, id: name, available: slices.Clone(available)}
}

func (e *NotFoundError) Error() string {
	if errors.Is(e.kind, ErrExampleNotFound) {
		return fmt.Sprintf("Example '%s' not found", e.id)
	}
	return fmt.Sprintf("Documentation '%s' not found", e.id)
}

func (e *NotFoundError) Unwrap() error { return e.kind }

// ID returns the identifier that was looked up.
func (e *NotFoundError) ID() string { return e.id }

// Available returns the known identifiers, when the lookup offers them.
func (e *NotFoundError) Available() []string { return slices.Clone(e.available) }
