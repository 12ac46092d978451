package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
	documentuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/document"
	exampleuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/example"
	healthuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/health"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
	searchuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/search"
	statsuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/stats"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements ServerInterface on top of the use case services.
type Server struct {
	search        *searchuc.Service
	documents     *documentuc.Service
	examples      *exampleuc.Service
	prompts       *promptuc.Service
	stats         *statsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	documents *documentuc.Service,
	examples *exampleuc.Service,
	prompts *promptuc.Service,
	stats *statsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		documents: documents,
		examples:  examples,
		prompts:   prompts,
		stats:     stats,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		notFoundHandler,
		sentinelHandler(domain.ErrInvalidEntry, http.StatusBadRequest, api.ErrorCodeBadRequest),
	}
	return s
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request, params SearchParams) {
	resp := s.search.Search(r.Context(), params.Query)
	writeJSON(w, http.StatusOK, api.FromSearch(resp))
}

// GetDocument handles GET /api/v1/docs/{doc_id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, docID string) {
	doc, err := s.documents.Get(r.Context(), docID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromDocument(doc))
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.documents.Categories(r.Context()))
}

// GetExample handles GET /api/v1/examples/{example_name}.
func (s *Server) GetExample(w http.ResponseWriter, r *http.Request, exampleName string) {
	ex, err := s.examples.Get(r.Context(), exampleName)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromExample(ex))
}

// BuildServerPrompt handles GET /api/v1/prompts/build-server.
func (s *Server) BuildServerPrompt(w http.ResponseWriter, r *http.Request, params BuildServerPromptParams) {
	features := "none"
	if params.Features != nil {
		features = *params.Features
	}
	writeJSON(w, http.StatusOK, api.Prompt{
		Name: promptuc.BuildServerName,
		Text: s.prompts.BuildServer(r.Context(), params.ServerType, features),
	})
}

// DebugPrompt handles GET /api/v1/prompts/debug.
func (s *Server) DebugPrompt(w http.ResponseWriter, r *http.Request, params DebugPromptParams) {
	writeJSON(w, http.StatusOK, api.Prompt{
		Name: promptuc.DebugName,
		Text: s.prompts.Debug(r.Context(), params.IssueType),
	})
}

// LearnPrompt handles GET /api/v1/prompts/learn.
func (s *Server) LearnPrompt(w http.ResponseWriter, r *http.Request, params LearnPromptParams) {
	style := ""
	if params.LearnStyle != nil {
		style = *params.LearnStyle
	}
	writeJSON(w, http.StatusOK, api.Prompt{
		Name: promptuc.LearnName,
		Text: s.prompts.Learn(r.Context(), params.Topic, style),
	})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.FromStats(s.stats.Snapshot(r.Context())))
}

// CompleteDocIDs handles GET /api/v1/complete/docs.
func (s *Server) CompleteDocIDs(w http.ResponseWriter, r *http.Request, params CompleteParams) {
	writeJSON(w, http.StatusOK, s.documents.Complete(r.Context(), deref(params.Partial)))
}

// CompleteExampleNames handles GET /api/v1/complete/examples.
func (s *Server) CompleteExampleNames(w http.ResponseWriter, r *http.Request, params CompleteParams) {
	writeJSON(w, http.StatusOK, s.examples.Complete(r.Context(), deref(params.Partial)))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, api.HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	writeJSON(w, status, api.ErrorResponse{
		Code:  code,
		Error: message,
	})
}

// notFoundHandler renders lookup misses with the same payload the MCP tools return.
func notFoundHandler(w http.ResponseWriter, err error) bool {
	resp, ok := api.FromNotFound(err)
	if !ok {
		return false
	}
	writeJSON(w, http.StatusNotFound, resp)
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code api.ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Debug("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, api.ErrorCodeInternal, "internal error")
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
