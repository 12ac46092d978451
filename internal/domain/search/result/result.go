package result

import "slices"

// Preview truncation parameters.
const (
	PreviewLength = 200
	PreviewSuffix = "..."
)

// Result is a single search hit.
type Result struct {
	id       string
	title    string
	category string
	tags     []string
	preview  string
}

// New creates a search result; preview is derived from content.
func New(id, title, category string, tags []string, content string) Result {
	return Result{
		id: id, title: title, category: category,
		tags: slices.Clone(tags), preview: Preview(content),
	}
}

// Preview returns the first PreviewLength characters of content followed by
// PreviewSuffix. The suffix is appended even when content is shorter.
func Preview(content string) string {
	r := []rune(content)
	if len(r) > PreviewLength {
		r = r[:PreviewLength]
	}
	return string(r) + PreviewSuffix
}

// ID returns the document identifier.
func (r *Result) ID() string { return r.id }

// Title returns the document title.
func (r *Result) Title() string { return r.title }

// Category returns the document category.
func (r *Result) Category() string { return r.category }

// Tags returns the document tags.
func (r *Result) Tags() []string { return slices.Clone(r.tags) }

// Preview returns the truncated content excerpt.
func (r *Result) Preview() string { return r.preview }

// Response is the outcome of one search call.
type Response struct {
	Query   string
	Results []Result
}

// Count returns the number of hits.
func (r Response) Count() int { return len(r.Results) }
