// Package api holds the wire payloads shared by the HTTP and MCP transports.
package api

// ErrorCode is a machine-readable error category for HTTP-only failures.
type ErrorCode string

// ErrorCode values.
const (
	ErrorCodeBadRequest   ErrorCode = "bad_request"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeRateLimited  ErrorCode = "rate_limited"
	ErrorCodeInternal     ErrorCode = "internal_error"
)

// SearchResult is one search hit.
type SearchResult struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Preview  string   `json:"preview"`
}

// SearchResponse is the search payload.
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// Document is a full documentation article.
type Document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Example is a runnable code example.
type Example struct {
	Description string `json:"description"`
	Code        string `json:"code"`
}

// ErrorResponse is the lookup-miss payload. Code is only set by the HTTP
// transport for failures that are not lookups.
type ErrorResponse struct {
	Code      ErrorCode `json:"code,omitempty"`
	Error     string    `json:"error"`
	Available []string  `json:"available,omitempty"`
}

// Stats is the server statistics payload.
type Stats struct {
	TotalDocs         int      `json:"total_docs"`
	TotalSearches     int64    `json:"total_searches"`
	Categories        []string `json:"categories"`
	AvailableExamples []string `json:"available_examples"`
}

// Prompt is a rendered workflow prompt.
type Prompt struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
