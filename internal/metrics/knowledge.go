package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "docserver"

// Knowledge base Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of documentation searches",
		},
	)

	SearchHits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_hits",
			Help:      "Number of documents matched per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		},
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Document and example lookups by outcome",
		},
		[]string{"kind", "result"}, // kind: document/example, result: hit/miss
	)

	PromptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_total",
			Help:      "Rendered workflow prompts",
		},
		[]string{"prompt", "variant"},
	)

	MCPCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mcp_calls_total",
			Help:      "MCP tool, prompt and resource calls",
		},
		[]string{"name", "status"},
	)
)

var knowledgeMetricsRegistered bool

// RegisterKnowledgeMetrics registers the knowledge base metrics. Must be called once from main.
func RegisterKnowledgeMetrics() {
	if knowledgeMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchHits)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(PromptsTotal)
	prometheus.MustRegister(MCPCallsTotal)
	knowledgeMetricsRegistered = true
}
