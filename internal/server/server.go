// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                              liveness probe
//	POST /render?input=yaml&format=text        render the posted document
//	GET  /sample?format=text                   render the built-in sample
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with "error" and "code" fields.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/flowbox/pkg/pipeline"
)

const (
	// maxBodyBytes bounds uploaded documents.
	maxBodyBytes = 1 << 20

	shutdownTimeout = 10 * time.Second
)

// Deps holds the dependencies of the server.
type Deps struct {
	Runner *pipeline.Runner
	Logger *log.Logger

	// MaxCells caps the canvas of a posted document. Zero means
	// pipeline.DefaultMaxCells.
	MaxCells int
}

// Server serves the HTTP API.
type Server struct {
	deps Deps
}

// New creates a server. A nil runner gets an uncached one.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.MaxCells == 0 {
		deps.MaxCells = pipeline.DefaultMaxCells
	}
	if deps.Runner == nil {
		deps.Runner = pipeline.NewRunner(nil, deps.Logger)
	}
	return &Server{deps: deps}
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Get("/sample", s.handleSample)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.deps.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
