package document

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

//go:embed corpus/index.yaml corpus/*.md
var corpusFS embed.FS

const indexName = "index.yaml"

// Repo is the read-only corpus store. It is fully populated by the
// constructor and never mutated afterwards, so reads take no locks.
type Repo struct {
	order []string
	byID  map[string]domdoc.Document
}

// New builds a store from documents in the given order.
func New(docs []domdoc.Document) (*Repo, error) {
	r := &Repo{
		order: make([]string, 0, len(docs)),
		byID:  make(map[string]domdoc.Document, len(docs)),
	}
	for _, d := range docs {
		if d.ID() == "" {
			return nil, fmt.Errorf("%w: document without ID", domain.ErrInvalidEntry)
		}
		if _, ok := r.byID[d.ID()]; ok {
			return nil, fmt.Errorf("document %q: %w", d.ID(), domain.ErrAlreadyExists)
		}
		r.order = append(r.order, d.ID())
		r.byID[d.ID()] = d
	}
	return r, nil
}

// Load builds a store from an index.yaml plus one <id>.md body per entry.
func Load(fsys fs.FS) (*Repo, error) {
	data, err := fs.ReadFile(fsys, indexName)
	if err != nil {
		return nil, fmt.Errorf("read corpus index: %w", err)
	}

	var idx indexFile
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse corpus index: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(idx.Documents))
	for _, e := range idx.Documents {
		d, err := e.toDomain(fsys)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
		}
		docs = append(docs, d)
	}
	return New(docs)
}

// Default loads the built-in NextMCP corpus.
func Default() (*Repo, error) {
	sub, err := fs.Sub(corpusFS, "corpus")
	if err != nil {
		return nil, fmt.Errorf("open embedded corpus: %w", err)
	}
	return Load(sub)
}

// Get returns a document by exact, case-sensitive ID.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, error) {
	d, ok := r.byID[id]
	if !ok {
		return domdoc.Document{}, domain.NewDocumentNotFound(id)
	}
	return d, nil
}

// List returns all documents in corpus order.
func (r *Repo) List(_ context.Context) []domdoc.Document {
	out := make([]domdoc.Document, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out
}

// IDs returns every document ID in corpus order.
func (r *Repo) IDs(_ context.Context) []string {
	return slices.Clone(r.order)
}

// Categories returns the distinct categories, sorted. Computed on every call.
func (r *Repo) Categories(_ context.Context) []string {
	seen := make(map[string]struct{}, len(r.byID))
	out := make([]string, 0, len(r.byID))
	for _, d := range r.byID {
		if _, ok := seen[d.Category()]; ok {
			continue
		}
		seen[d.Category()] = struct{}{}
		out = append(out, d.Category())
	}
	slices.Sort(out)
	return out
}

// Count returns the corpus size.
func (r *Repo) Count(_ context.Context) int { return len(r.order) }

// Ping reports an empty corpus as unhealthy.
func (r *Repo) Ping(_ context.Context) error {
	if len(r.order) == 0 {
		return fmt.Errorf("corpus is empty")
	}
	return nil
}

// CompleteIDs returns document IDs containing partial, in corpus order.
func (r *Repo) CompleteIDs(_ context.Context, partial string) []string {
	out := make([]string, 0, len(r.order))
	for _, id := range r.order {
		if strings.Contains(id, partial) {
			out = append(out, id)
		}
	}
	return out
}
