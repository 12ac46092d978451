// Package mcp exposes the knowledge base as MCP tools, prompts and resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	logpkg "github.com/KeshavVarad/nextmcp-docs-server/internal/logger"
	documentuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/document"
	exampleuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/example"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
	searchuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/search"
	statsuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/stats"
)

// Options names the server advertised to MCP clients.
type Options struct {
	Name         string
	Version      string
	Instructions string
}

// Summary counts what was registered.
type Summary struct {
	Tools     int
	Prompts   int
	Resources int
	Templates int
}

// Host adapts the use case services to MCP handlers.
type Host struct {
	search    *searchuc.Service
	documents *documentuc.Service
	examples  *exampleuc.Service
	prompts   *promptuc.Service
	stats     *statsuc.Service
	logger    *zap.Logger
	calls     *prometheus.CounterVec
}

// NewHost creates a Host.
func NewHost(
	search *searchuc.Service,
	documents *documentuc.Service,
	examples *exampleuc.Service,
	prompts *promptuc.Service,
	stats *statsuc.Service,
	logger *zap.Logger,
) *Host {
	return &Host{
		search:    search,
		documents: documents,
		examples:  examples,
		prompts:   prompts,
		stats:     stats,
		logger:    logger,
	}
}

// WithMetrics attaches a counter vec with labels "name" and "status".
func (h *Host) WithMetrics(calls *prometheus.CounterVec) *Host {
	h.calls = calls
	return h
}

// NewServer creates an MCP server with every tool, prompt and resource registered.
func (h *Host) NewServer(opts Options) (*server.MCPServer, Summary) {
	s := server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(opts.Instructions),
	)
	return s, h.Register(s)
}

// Register adds all handlers to s.
func (h *Host) Register(s *server.MCPServer) Summary {
	var sum Summary

	for _, t := range h.tools() {
		s.AddTool(t.def, observe(h, t.def.Name, t.handle))
		sum.Tools++
	}
	for _, p := range h.promptDefs() {
		s.AddPrompt(p.def, observe(h, p.def.Name, p.handle))
		sum.Prompts++
	}
	for _, r := range h.resources() {
		s.AddResource(r.def, observe(h, r.def.URI, r.handle))
		sum.Resources++
	}
	for _, t := range h.templates() {
		s.AddResourceTemplate(t.def, observe(h, t.def.Name, t.handle))
		sum.Templates++
	}

	return sum
}

// observe gives each call a request-scoped logger with a call id, then
// emits one mcp_call line and counts the outcome.
func observe[Req, Res any](
	h *Host, name string, next func(context.Context, Req) (Res, error),
) func(context.Context, Req) (Res, error) {
	return func(ctx context.Context, req Req) (Res, error) {
		start := time.Now()
		log := h.logger.With(
			zap.String("call_id", uuid.NewString()),
			zap.String("name", name),
		)

		res, err := next(logpkg.ContextWithLogger(ctx, log), req)

		status := "ok"
		if err != nil {
			status = "error"
		}
		if h.calls != nil {
			h.calls.WithLabelValues(name, status).Inc()
		}
		log.Info("mcp_call",
			zap.String("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return res, err
	}
}

// jsonText marshals v into a single text block.
func jsonText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(b), nil
}

func jsonToolResult(v any) (*mcp.CallToolResult, error) {
	text, err := jsonText(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
