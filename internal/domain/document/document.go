package document

import (
	"fmt"
	"regexp"
	"slices"
)

var idRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Document is a documentation article (immutable value object).
type Document struct {
	id       string
	title    string
	content  string
	category string
	tags     []string
}

// New validates and creates a Document.
// ID: lowercase slug, non-empty. Title and category are required; content may
// be empty but usually is not.
func New(id, title, content, category string, tags []string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf("document ID %q must be a lowercase slug", id)
	}
	if title == "" {
		return Document{}, fmt.Errorf("document %q: title is required", id)
	}
	if category == "" {
		return Document{}, fmt.Errorf("document %q: category is required", id)
	}

	return Document{
		id:       id,
		title:    title,
		content:  content,
		category: category,
		tags:     slices.Clone(tags),
	}, nil
}

// Reconstruct creates a Document without validation.
func Reconstruct(id, title, content, category string, tags []string) Document {
	return Document{id: id, title: title, content: content, category: category, tags: tags}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the article title.
func (d *Document) Title() string { return d.title }

// Content returns the article body.
func (d *Document) Content() string { return d.content }

// Category returns the article category.
func (d *Document) Category() string { return d.category }

// Tags returns a copy of the ordered tag list.
func (d *Document) Tags() []string { return slices.Clone(d.tags) }
