package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/config"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/domain/stats"
	logpkg "github.com/KeshavVarad/nextmcp-docs-server/internal/logger"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/metrics"
	docrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/document"
	exrepo "github.com/KeshavVarad/nextmcp-docs-server/internal/repository/example"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
	chiTransport "github.com/KeshavVarad/nextmcp-docs-server/internal/transport/chi"
	mcpTransport "github.com/KeshavVarad/nextmcp-docs-server/internal/transport/mcp"
	documentuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/document"
	exampleuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/example"
	healthuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/health"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
	searchuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/search"
	statsuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/stats"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/version"
)

// serveOptions overrides config values from the command line.
type serveOptions struct {
	transport string
	port      int
}

func newServeCmd(root *rootOptions, opts *serveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio, streamable HTTP, or both)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", "", "override mcp.transport: stdio, http, both")
	cmd.Flags().IntVar(&opts.port, "port", 0, "override http.port")
	return cmd
}

func runServe(ctx context.Context, root *rootOptions, opts *serveOptions) error {
	cfg, err := config.Load(root.env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.transport != "" {
		cfg.MCP.Transport = opts.transport
	}
	if opts.port != 0 {
		cfg.HTTP.Port = opts.port
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logpkg.NewLogger(root.env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, stop, cfg, root.env, logger)
}

// services is the wired use case layer shared by both transports.
type services struct {
	docs      *docrepo.Repo
	examples  *exrepo.Repo
	search    *searchuc.Service
	documents *documentuc.Service
	catalog   *exampleuc.Service
	prompts   *promptuc.Service
	stats     *statsuc.Service
	health    *healthuc.Service
}

// buildServices loads the embedded data and wires the use cases.
// With instrumented set, the services report to the default Prometheus registry.
func buildServices(instrumented bool) (*services, error) {
	docs, err := docrepo.Default()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	examples, err := exrepo.Default()
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}

	counter := &stats.Counter{}
	svc := &services{
		docs:      docs,
		examples:  examples,
		search:    searchuc.New(docs, counter),
		documents: documentuc.New(docs),
		catalog:   exampleuc.New(examples),
		prompts:   promptuc.New(),
		health:    healthuc.New(docs, examples),
	}
	svc.stats = statsuc.New(svc.documents, svc.catalog, counter)

	if instrumented {
		metrics.RegisterKnowledgeMetrics()
		svc.search.WithMetrics(metrics.SearchesTotal, metrics.SearchHits)
		svc.documents.WithMetrics(metrics.LookupsTotal)
		svc.catalog.WithMetrics(metrics.LookupsTotal)
		svc.prompts.WithMetrics(metrics.PromptsTotal)
	}
	return svc, nil
}

func serve(ctx context.Context, stop context.CancelFunc, cfg config.Config, env string, logger *zap.Logger) error {
	svc, err := buildServices(true)
	if err != nil {
		return err
	}

	host := mcpTransport.NewHost(svc.search, svc.documents, svc.catalog, svc.prompts, svc.stats, logger).
		WithMetrics(metrics.MCPCallsTotal)
	mcpServer, summary := host.NewServer(mcpTransport.Options{
		Name:         cfg.MCP.Name,
		Version:      version.Version,
		Instructions: cfg.MCP.Instructions,
	})

	logger.Info("Starting NextMCP documentation server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("transport", cfg.MCP.Transport),
		zap.Int("documents", svc.docs.Count(ctx)),
		zap.Int("categories", len(svc.docs.Categories(ctx))),
		zap.Int("examples", len(svc.examples.Names(ctx))),
		zap.Int("tools", summary.Tools),
		zap.Int("prompts", summary.Prompts),
		zap.Int("resources", summary.Resources+summary.Templates),
	)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.ServesStdio() {
		g.Go(func() error {
			// stdin closing means the client is gone.
			defer stop()
			return serveStdio(gctx, mcpServer, logger)
		})
	}

	if cfg.ServesHTTP() {
		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:      newHTTPHandler(svc, mcpServer, cfg, logger),
			ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
		}

		g.Go(func() error {
			logger.Info("Starting HTTP server",
				zap.String("addr", srv.Addr),
				zap.String("mcp_endpoint", cfg.MCP.Endpoint),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("Shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}

// serveStdio speaks MCP over stdin/stdout. Logs stay on stderr.
func serveStdio(ctx context.Context, s *server.MCPServer, logger *zap.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(zap.NewStdLog(logger.Named("stdio")))

	logger.Info("Serving MCP over stdio")
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// newHTTPHandler builds the router: REST API, /health, /metrics and the
// streamable MCP endpoint.
func newHTTPHandler(svc *services, mcpServer *server.MCPServer, cfg config.Config, logger *zap.Logger) http.Handler {
	rest := chiTransport.NewServer(svc.search, svc.documents, svc.catalog, svc.prompts, svc.stats, svc.health, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(chiTransport.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(metrics.Middleware())

	r.Handle(cfg.MCP.Endpoint, clearWriteDeadline(server.NewStreamableHTTPServer(mcpServer,
		server.WithEndpointPath(cfg.MCP.Endpoint),
	)))

	return chiTransport.HandlerWithOptions(rest, chiTransport.ChiServerOptions{BaseRouter: r})
}

// clearWriteDeadline lifts http.Server.WriteTimeout for one handler.
// MCP notification streams stay open far longer than any REST response.
func clearWriteDeadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
		next.ServeHTTP(w, r)
	})
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(api.ErrorResponse{
						Code:  api.ErrorCodeInternal,
						Error: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			ctx := logpkg.WithFields(logpkg.ContextWithLogger(r.Context(), logger),
				zap.String("request_id", requestID))
			reqLogger := logpkg.FromContext(ctx)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
