// Package server exposes sheet rendering over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness and build version
//	GET  /v1/decode/{value}     pip face of one value as JSON
//	POST /v1/sheets?format=pdf  render a sheet; the body is pipeline.Options
//
// Sheet responses carry the artifact bytes with X-Document-Id and X-Seed
// headers. Errors are JSON objects with "code" and "error" fields; input
// errors map to 400, everything else to 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

const (
	// maxBodyBytes bounds the size of a sheet request body.
	maxBodyBytes = 1 << 20

	// requestTimeout bounds a single request, rsvg-convert included.
	requestTimeout = 2 * time.Minute

	shutdownTimeout = 10 * time.Second
)

// Server renders sheets for HTTP clients. It is safe for concurrent use;
// every request builds its own value pool.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server backed by runner. A nil logger uses log.Default.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/decode/{value}", s.handleDecode)
		r.Post("/sheets", s.handleSheet)
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
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
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
