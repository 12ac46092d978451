// Package format renders query results for the command line.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

// Format is an output format.
type Format string

// Format values.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Parse validates a --format value. "md" is accepted for markdown.
func Parse(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatMarkdown:
		return Format(s), nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// New creates a Printer.
func New(w io.Writer, f Format) *Printer {
	return &Printer{w: w, format: f}
}

// Search prints a search response.
func (p *Printer) Search(resp api.SearchResponse) error {
	switch p.format {
	case FormatJSON:
		return p.json(resp)
	case FormatMarkdown:
		var b strings.Builder
		fmt.Fprintf(&b, "## Results for %q (%d)\n\n", resp.Query, resp.Count)
		for _, r := range resp.Results {
			fmt.Fprintf(&b, "- **%s** (`%s`, %s): %s\n", r.Title, r.ID, r.Category, oneLine(r.Preview))
		}
		return p.print(b.String())
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf("%d result(s) for %q", resp.Count, resp.Query)))
		for _, r := range resp.Results {
			fmt.Fprintf(&b, "%s %s\n", idStyle.Render(r.ID), titleStyle.Render(r.Title))
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(r.Category+" · "+strings.Join(r.Tags, ", ")))
			fmt.Fprintf(&b, "  %s\n\n", oneLine(r.Preview))
		}
		return p.print(b.String())
	}
}

// Document prints a full document. Text output renders the markdown body.
func (p *Printer) Document(doc api.Document) error {
	switch p.format {
	case FormatJSON:
		return p.json(doc)
	case FormatMarkdown:
		return p.print(doc.Content)
	default:
		header := titleStyle.Render(doc.Title) + "\n" +
			mutedStyle.Render(doc.ID+" · "+doc.Category+" · "+strings.Join(doc.Tags, ", ")) + "\n"
		body, err := renderMarkdown(doc.Content)
		if err != nil {
			return err
		}
		return p.print(header + body)
	}
}

// Example prints a code example.
func (p *Printer) Example(name string, ex api.Example) error {
	switch p.format {
	case FormatJSON:
		return p.json(ex)
	case FormatMarkdown:
		code := strings.TrimRight(ex.Code, "\n")
		return p.print(fmt.Sprintf("## %s\n\n%s\n\n```python\n%s\n```\n", name, ex.Description, code))
	default:
		return p.print(titleStyle.Render(name) + "\n" + mutedStyle.Render(ex.Description) + "\n" + ex.Code)
	}
}

// Miss prints a lookup-miss payload.
func (p *Printer) Miss(resp api.ErrorResponse) error {
	if p.format == FormatJSON {
		return p.json(resp)
	}
	out := errorStyle.Render(resp.Error) + "\n"
	if len(resp.Available) > 0 {
		out += mutedStyle.Render("available: "+strings.Join(resp.Available, ", ")) + "\n"
	}
	return p.print(out)
}

// List prints a list of names.
func (p *Printer) List(items []string) error {
	switch p.format {
	case FormatJSON:
		return p.json(items)
	case FormatMarkdown:
		var b strings.Builder
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
		return p.print(b.String())
	default:
		return p.print(strings.Join(items, "\n") + "\n")
	}
}

// Prompt prints a rendered prompt. Text and markdown are the raw prompt.
func (p *Printer) Prompt(pr api.Prompt) error {
	if p.format == FormatJSON {
		return p.json(pr)
	}
	return p.print(pr.Text)
}

// Stats prints server statistics.
func (p *Printer) Stats(s api.Stats) error {
	switch p.format {
	case FormatJSON:
		return p.json(s)
	case FormatMarkdown:
		return p.print(fmt.Sprintf(
			"| Metric | Value |\n|---|---|\n| Documents | %d |\n| Searches | %d |\n| Categories | %s |\n| Examples | %s |\n",
			s.TotalDocs, s.TotalSearches, strings.Join(s.Categories, ", "), strings.Join(s.AvailableExamples, ", ")))
	default:
		row := func(k, v string) string { return mutedStyle.Render(fmt.Sprintf("%-12s", k)) + v + "\n" }
		return p.print(row("documents", fmt.Sprint(s.TotalDocs)) +
			row("searches", fmt.Sprint(s.TotalSearches)) +
			row("categories", strings.Join(s.Categories, ", ")) +
			row("examples", strings.Join(s.AvailableExamples, ", ")))
	}
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (p *Printer) print(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
