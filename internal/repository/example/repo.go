package example

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	domex "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/example"
)

//go:embed snippets/index.yaml snippets/*.py
var snippetsFS embed.FS

const indexName = "index.yaml"

type indexFile struct {
	Examples []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"examples"`
}

// Repo is the read-only example catalog, independent of the document corpus.
type Repo struct {
	order  []string
	byName map[string]domex.Example
}

// New builds a catalog from examples in the given order.
func New(examples []domex.Example) (*Repo, error) {
	r := &Repo{
		order:  make([]string, 0, len(examples)),
		byName: make(map[string]domex.Example, len(examples)),
	}
	for _, e := range examples {
		if e.Name() == "" {
			return nil, fmt.Errorf("%w: example without name", domain.ErrInvalidEntry)
		}
		if _, ok := r.byName[e.Name()]; ok {
			return nil, fmt.Errorf("example %q: %w", e.Name(), domain.ErrAlreadyExists)
		}
		r.order = append(r.order, e.Name())
		r.byName[e.Name()] = e
	}
	return r, nil
}

// Load builds a catalog from index.yaml plus one <name>.py per entry.
func Load(fsys fs.FS) (*Repo, error) {
	data, err := fs.ReadFile(fsys, indexName)
	if err != nil {
		return nil, fmt.Errorf("read example index: %w", err)
	}

	var idx indexFile
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse example index: %w", err)
	}

	examples := make([]domex.Example, 0, len(idx.Examples))
	for _, e := range idx.Examples {
		code, err := fs.ReadFile(fsys, e.Name+".py")
		if err != nil {
			return nil, fmt.Errorf("%w: read code of %q: %w", domain.ErrInvalidEntry, e.Name, err)
		}
		ex, err := domex.New(e.Name, e.Description, string(code))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
		}
		examples = append(examples, ex)
	}
	return New(examples)
}

// Default loads the built-in example catalog.
func Default() (*Repo, error) {
	sub, err := fs.Sub(snippetsFS, "snippets")
	if err != nil {
		return nil, fmt.Errorf("open embedded snippets: %w", err)
	}
	return Load(sub)
}

// Get returns an example by name. A miss carries every known name.
func (r *Repo) Get(_ context.Context, name string) (domex.Example, error) {
	e, ok := r.byName[name]
	if !ok {
		return domex.Example{}, domain.NewExampleNotFound(name, r.order)
	}
	return e, nil
}

// Names returns every example name in catalog order.
func (r *Repo) Names(_ context.Context) []string {
	return slices.Clone(r.order)
}

// Ping reports an empty catalog as unhealthy.
func (r *Repo) Ping(_ context.Context) error {
	if len(r.order) == 0 {
		return fmt.Errorf("example catalog is empty")
	}
	return nil
}

// CompleteNames returns example names containing partial, in catalog order.
func (r *Repo) CompleteNames(_ context.Context, partial string) []string {
	out := make([]string, 0, len(r.order))
	for _, n := range r.order {
		if strings.Contains(n, partial) {
			out = append(out, n)
		}
	}
	return out
}
