package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type serverOptions struct {
	corsOrigin string
	digest     interfaces.Digest
}

// Option configures the HTTP server
type Option func(*serverOptions)

// WithCORSOrigin allows cross-origin requests from a dashboard served elsewhere
func WithCORSOrigin(origin string) Option {
	return func(o *serverOptions) {
		o.corsOrigin = origin
	}
}

// WithDigest enables the Slack digest endpoint
func WithDigest(digest interfaces.Digest) Option {
	return func(o *serverOptions) {
		o.digest = digest
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, timelineUC interfaces.Timeline, opts ...Option) *Server {
	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if options.corsOrigin != "" {
		router.Use(CORS(options.corsOrigin))
	}

	api := NewAPIHandler(timelineUC, options.digest)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/sources", api.HandleListSources)
		r.Route("/sources/{source}", func(r chi.Router) {
			r.Get("/timeline", api.HandleTimeline)
			r.Get("/summary", api.HandleSummary)
			r.Post("/items", api.HandleImport)
			r.Delete("/", api.HandleDelete)
			r.Post("/digest", api.HandleDigest)
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sprintboard",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidSource):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDigestNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs unexpected errors and writes the mapped response
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}
	writeError(w, err, status)
}
