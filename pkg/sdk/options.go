package docserver

import (
	"io/fs"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	corpus   fs.FS
	examples fs.FS

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCorpus loads documents from fsys (index.yaml plus one <id>.md per
// entry) instead of the embedded corpus.
func WithCorpus(fsys fs.FS) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpus = fsys
	})
}

// WithExamples loads examples from fsys (index.yaml plus one <name>.py per
// entry) instead of the embedded catalog.
func WithExamples(fsys fs.FS) Option {
	return optionFunc(func(c *clientConfig) {
		c.examples = fsys
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
