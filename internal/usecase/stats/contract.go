package stats

import "context"

// CorpusReader provides read-only corpus facts.
type CorpusReader interface {
	Count(ctx context.Context) int
	Categories(ctx context.Context) []string
}

// CatalogReader lists example names.
type CatalogReader interface {
	Names(ctx context.Context) []string
}

// CounterReader reads the process-wide search counter.
type CounterReader interface {
	Load() int64
}
