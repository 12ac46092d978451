package document

import (
	"fmt"
	"io/fs"

	domdoc "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/document"
)

// indexFile is the on-disk shape of corpus/index.yaml.
type indexFile struct {
	Documents []indexEntry `yaml:"documents"`
}

// indexEntry holds the metadata of one article; the body lives in <id>.md.
type indexEntry struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// toDomain reads the article body and validates the entry.
func (e indexEntry) toDomain(fsys fs.FS) (domdoc.Document, error) {
	body, err := fs.ReadFile(fsys, e.ID+".md")
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("read body of %q: %w", e.ID, err)
	}
	doc, err := domdoc.New(e.ID, e.Title, string(body), e.Category, e.Tags)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("parse %q: %w", e.ID, err)
	}
	return doc, nil
}
