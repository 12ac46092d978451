package docserver

import (
	"context"
	"fmt"
	"time"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
	docrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/document"
	exrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/example"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
	documentuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/document"
	exampleuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/example"
	healthuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/health"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
	searchuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/search"
	statsuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/stats"
)

// Client is the knowledge base SDK entry point.
// It is safe for concurrent use; the search counter is per Client.
type Client struct {
	searchSvc *searchuc.Service
	docSvc    *documentuc.Service
	exSvc     *exampleuc.Service
	promptSvc *promptuc.Service
	statsSvc  *statsuc.Service
	healthSvc healthUseCase
	obs       *observer
}

// New loads the corpus and the example catalog and wires the services.
// Without WithCorpus or WithExamples the embedded data is used.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	docs, err := loadCorpus(cfg)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	examples, err := loadExamples(cfg)
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, fmt.Errorf("init observer: %w", err)
	}

	var searches stats.Counter
	docSvc := documentuc.New(docs)
	exSvc := exampleuc.New(examples)

	return &Client{
		searchSvc: searchuc.New(docs, &searches),
		docSvc:    docSvc,
		exSvc:     exSvc,
		promptSvc: promptuc.New(),
		statsSvc:  statsuc.New(docSvc, exSvc, &searches),
		healthSvc: healthuc.New(docs, examples),
		obs:       obs,
	}, nil
}

func loadCorpus(cfg *clientConfig) (*docrepo.Repo, error) {
	if cfg.corpus != nil {
		return docrepo.Load(cfg.corpus)
	}
	return docrepo.Default()
}

func loadExamples(cfg *clientConfig) (*exrepo.Repo, error) {
	if cfg.examples != nil {
		return exrepo.Load(cfg.examples)
	}
	return exrepo.Default()
}

// Search returns every document matching query, in corpus order.
func (c *Client) Search(ctx context.Context, query string) SearchResponse {
	start := time.Now()
	resp := api.FromSearch(c.searchSvc.Search(ctx, query))
	c.obs.observe("search", start, nil)
	return resp
}

// Doc returns the full document for id.
// A miss returns a *NotFoundError wrapping ErrDocumentNotFound.
func (c *Client) Doc(ctx context.Context, id string) (Document, error) {
	start := time.Now()
	doc, err := c.docSvc.Get(ctx, id)
	c.obs.observe("get_doc", start, err)
	if err != nil {
		return Document{}, err
	}
	return api.FromDocument(doc), nil
}

// Categories returns the sorted distinct categories.
func (c *Client) Categories(ctx context.Context) []string {
	start := time.Now()
	cats := c.docSvc.Categories(ctx)
	c.obs.observe("list_categories", start, nil)
	return cats
}

// Example returns the example registered under name.
// A miss returns a *NotFoundError wrapping ErrExampleNotFound and listing every known name.
func (c *Client) Example(ctx context.Context, name string) (Example, error) {
	start := time.Now()
	ex, err := c.exSvc.Get(ctx, name)
	c.obs.observe("get_example", start, err)
	if err != nil {
		return Example{}, err
	}
	return api.FromExample(ex), nil
}

// BuildServerPrompt renders the build-server workflow for a server type and
// a comma-separated feature list.
func (c *Client) BuildServerPrompt(ctx context.Context, serverType, features string) string {
	start := time.Now()
	text := c.promptSvc.BuildServer(ctx, serverType, features)
	c.obs.observe("build_server_prompt", start, nil)
	return text
}

// DebugPrompt renders the troubleshooting checklist for an issue type.
func (c *Client) DebugPrompt(ctx context.Context, issueType string) string {
	start := time.Now()
	text := c.promptSvc.Debug(ctx, issueType)
	c.obs.observe("debug_prompt", start, nil)
	return text
}

// LearnPrompt renders the learning prompt for a topic. An empty style means "overview".
func (c *Client) LearnPrompt(ctx context.Context, topic, style string) string {
	start := time.Now()
	text := c.promptSvc.Learn(ctx, topic, style)
	c.obs.observe("learn_prompt", start, nil)
	return text
}

// Stats returns a snapshot of corpus size, searches served by this Client,
// categories and example names.
func (c *Client) Stats(ctx context.Context) Stats {
	start := time.Now()
	s := api.FromStats(c.statsSvc.Snapshot(ctx))
	c.obs.observe("stats", start, nil)
	return s
}

// CompleteDocIDs returns document ids containing partial.
func (c *Client) CompleteDocIDs(ctx context.Context, partial string) []string {
	start := time.Now()
	ids := c.docSvc.Complete(ctx, partial)
	c.obs.observe("complete_doc_ids", start, nil)
	return ids
}

// CompleteExampleNames returns example names containing partial.
func (c *Client) CompleteExampleNames(ctx context.Context, partial string) []string {
	start := time.Now()
	names := c.exSvc.Complete(ctx, partial)
	c.obs.observe("complete_example_names", start, nil)
	return names
}
