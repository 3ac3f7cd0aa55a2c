// Package server implements the svgantt render API.
//
// The server exposes one rendering endpoint plus health and metrics
// endpoints:
//
//	POST /render   render a schedule posted as pipeline options
//	GET  /healthz  liveness probe
//	GET  /metrics  Prometheus metrics
//
// Schedules arrive inline in the request body; the server never reads
// files from its own filesystem. A single requested format is returned
// as the raw artifact with its MIME type, multiple formats come back in
// a JSON envelope with base64-encoded artifacts.
//
// Every request carries a generated request ID, logged and echoed in
// the X-Request-ID response header.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pfeilbach/svgantt/pkg/cache"
	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/observability"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

// =============================================================================
// Configuration
// =============================================================================

// Config configures the render server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Cache backs the pipeline runner. Nil disables caching.
	Cache cache.Cache

	// Keyer derives cache keys. Nil uses the default keyer.
	Keyer cache.Keyer

	// Logger receives request and pipeline logs. Nil uses the default
	// logger.
	Logger *log.Logger
}

// Server is the svgantt HTTP render server.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// maxRequestBytes caps the /render request body. The limit sits above
// the schedule size limit so option fields fit alongside a maximal
// inline document.
const maxRequestBytes = errors.MaxScheduleBytes + 64*1024

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// New creates a render server. Prometheus-backed observability hooks
// are installed so pipeline and cache activity shows up on /metrics.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		runner: pipeline.NewRunner(cfg.Cache, cfg.Keyer, logger),
		logger: logger,
	}

	registerMetricsHooks()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/render", s.handleRender)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts the server and blocks until it is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases the cache.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.runner.Close(); err == nil {
		err = cerr
	}
	return err
}

// =============================================================================
// Middleware
// =============================================================================

// requestLogger assigns each request an ID and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration,
		)
	})
}

// =============================================================================
// Handlers
// =============================================================================

// renderResponse is the multi-format envelope returned by POST /render.
// Artifact bytes are base64-encoded by the JSON marshaller.
type renderResponse struct {
	ChartHash string            `json:"chart_hash"`
	Items     int               `json:"items"`
	Resources int               `json:"resources"`
	LayoutHit bool              `json:"layout_cache_hit"`
	RenderHit bool              `json:"render_cache_hit"`
	Artifacts map[string][]byte `json:"artifacts"`
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "decode request: %v", err))
		return
	}

	// Schedules must arrive inline. Accepting a file path here would
	// let clients read from the server's filesystem.
	if opts.Input != "" {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "input is not accepted here, provide the schedule as input_data"))
		return
	}

	// Validate up front so option mistakes surface as 400s rather than
	// falling through to the pipeline as internal errors.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}

	// A single artifact is returned directly with its MIME type.
	if len(result.Artifacts) == 1 {
		for format, data := range result.Artifacts {
			w.Header().Set("Content-Type", contentTypes[format])
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
		}
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		ChartHash: result.ChartHash,
		Items:     result.Stats.ItemCount,
		Resources: result.Stats.ResourceCount,
		LayoutHit: result.CacheInfo.LayoutHit,
		RenderHit: result.CacheInfo.RenderHit,
		Artifacts: result.Artifacts,
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusForError maps pipeline error codes to HTTP status codes.
// Unknown errors are treated as internal.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDate, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfig, errors.ErrCodeInsufficientItems, errors.ErrCodeMissingStartDate,
		errors.ErrCodeMissingResource, errors.ErrCodeResourceOutOfRange:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported, errors.ErrCodeConverterMissing:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
