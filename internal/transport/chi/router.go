package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

// SearchParams are the query parameters of GET /api/v1/search.
type SearchParams struct {
	Query string `form:"query" json:"query"`
}

// BuildServerPromptParams are the query parameters of GET /api/v1/prompts/build-server.
type BuildServerPromptParams struct {
	ServerType string  `form:"server_type" json:"server_type"`
	Features   *string `form:"features,omitempty" json:"features,omitempty"`
}

// DebugPromptParams are the query parameters of GET /api/v1/prompts/debug.
type DebugPromptParams struct {
	IssueType string `form:"issue_type" json:"issue_type"`
}

// LearnPromptParams are the query parameters of GET /api/v1/prompts/learn.
type LearnPromptParams struct {
	Topic      string  `form:"topic" json:"topic"`
	LearnStyle *string `form:"learn_style,omitempty" json:"learn_style,omitempty"`
}

// CompleteParams are the query parameters of the completion endpoints.
type CompleteParams struct {
	Partial *string `form:"partial,omitempty" json:"partial,omitempty"`
}

// ServerInterface is the HTTP API surface.
type ServerInterface interface {
	// (GET /api/v1/search)
	Search(w http.ResponseWriter, r *http.Request, params SearchParams)
	// (GET /api/v1/docs/{doc_id})
	GetDocument(w http.ResponseWriter, r *http.Request, docID string)
	// (GET /api/v1/categories)
	ListCategories(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/examples/{example_name})
	GetExample(w http.ResponseWriter, r *http.Request, exampleName string)
	// (GET /api/v1/prompts/build-server)
	BuildServerPrompt(w http.ResponseWriter, r *http.Request, params BuildServerPromptParams)
	// (GET /api/v1/prompts/debug)
	DebugPrompt(w http.ResponseWriter, r *http.Request, params DebugPromptParams)
	// (GET /api/v1/prompts/learn)
	LearnPrompt(w http.ResponseWriter, r *http.Request, params LearnPromptParams)
	// (GET /api/v1/stats)
	GetStats(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/complete/docs)
	CompleteDocIDs(w http.ResponseWriter, r *http.Request, params CompleteParams)
	// (GET /api/v1/complete/examples)
	CompleteExampleNames(w http.ResponseWriter, r *http.Request, params CompleteParams)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single route handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ParamError reports a missing or malformed request parameter.
type ParamError struct {
	ParamName string
	Err       error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// ServerInterfaceWrapper binds request parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, h http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		h = middleware(h)
	}
	h.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", &ParamError{ParamName: name, Err: err}
	}
	return v, nil
}

func bindQuery(r *http.Request, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return &ParamError{ParamName: name, Err: err}
	}
	return nil
}

// Search operation middleware
func (siw *ServerInterfaceWrapper) Search(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := bindQuery(r, "query", true, &params.Query); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Search(w, r, params)
	}))
}

// GetDocument operation middleware
func (siw *ServerInterfaceWrapper) GetDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := siw.pathParam(r, "doc_id")
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetDocument(w, r, docID)
	}))
}

// ListCategories operation middleware
func (siw *ServerInterfaceWrapper) ListCategories(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ListCategories))
}

// GetExample operation middleware
func (siw *ServerInterfaceWrapper) GetExample(w http.ResponseWriter, r *http.Request) {
	name, err := siw.pathParam(r, "example_name")
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetExample(w, r, name)
	}))
}

// BuildServerPrompt operation middleware
func (siw *ServerInterfaceWrapper) BuildServerPrompt(w http.ResponseWriter, r *http.Request) {
	var params BuildServerPromptParams
	if err := bindQuery(r, "server_type", true, &params.ServerType); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	if err := bindQuery(r, "features", false, &params.Features); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.BuildServerPrompt(w, r, params)
	}))
}

// DebugPrompt operation middleware
func (siw *ServerInterfaceWrapper) DebugPrompt(w http.ResponseWriter, r *http.Request) {
	var params DebugPromptParams
	if err := bindQuery(r, "issue_type", true, &params.IssueType); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DebugPrompt(w, r, params)
	}))
}

// LearnPrompt operation middleware
func (siw *ServerInterfaceWrapper) LearnPrompt(w http.ResponseWriter, r *http.Request) {
	var params LearnPromptParams
	if err := bindQuery(r, "topic", true, &params.Topic); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	if err := bindQuery(r, "learn_style", false, &params.LearnStyle); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.LearnPrompt(w, r, params)
	}))
}

// GetStats operation middleware
func (siw *ServerInterfaceWrapper) GetStats(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetStats))
}

// CompleteDocIDs operation middleware
func (siw *ServerInterfaceWrapper) CompleteDocIDs(w http.ResponseWriter, r *http.Request) {
	var params CompleteParams
	if err := bindQuery(r, "partial", false, &params.Partial); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CompleteDocIDs(w, r, params)
	}))
}

// CompleteExampleNames operation middleware
func (siw *ServerInterfaceWrapper) CompleteExampleNames(w http.ResponseWriter, r *http.Request) {
	var params CompleteParams
	if err := bindQuery(r, "partial", false, &params.Partial); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CompleteExampleNames(w, r, params)
	}))
}

// HealthCheck operation middleware
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.HealthCheck))
}

// Metrics operation middleware
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.Metrics))
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler creates an http.Handler with routing matching the HTTP API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions creates an http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, api.ErrorCodeBadRequest, err.Error())
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	base := options.BaseURL
	r.Group(func(r chi.Router) {
		r.Get(base+"/api/v1/search", wrapper.Search)
		r.Get(base+"/api/v1/docs/{doc_id}", wrapper.GetDocument)
		r.Get(base+"/api/v1/categories", wrapper.ListCategories)
		r.Get(base+"/api/v1/examples/{example_name}", wrapper.GetExample)
		r.Get(base+"/api/v1/prompts/build-server", wrapper.BuildServerPrompt)
		r.Get(base+"/api/v1/prompts/debug", wrapper.DebugPrompt)
		r.Get(base+"/api/v1/prompts/learn", wrapper.LearnPrompt)
		r.Get(base+"/api/v1/stats", wrapper.GetStats)
		r.Get(base+"/api/v1/complete/docs", wrapper.CompleteDocIDs)
		r.Get(base+"/api/v1/complete/examples", wrapper.CompleteExampleNames)
		r.Get(base+"/health", wrapper.HealthCheck)
		r.Get(base+"/metrics", wrapper.Metrics)
	})

	return r
}
