// Package server exposes layout sessions over HTTP.
//
// # Routes
//
//	POST   /sessions                  create a session, body {"center":{"x":0,"y":0}} (optional)
//	POST   /sessions/{id}/rects       place a rectangle, body {"width":w,"height":h}
//	PUT    /sessions/{id}/center      move the layout center, body {"x":x,"y":y}
//	GET    /sessions/{id}/layout      the layout file of the session
//	GET    /sessions/{id}/image.{fmt} the session rendered as png or svg
//	DELETE /sessions/{id}             drop the session
//	GET    /healthz                   liveness
//
// Errors are JSON objects {"code": "...", "message": "..."} using the codes
// of package errors. Unknown sessions answer 404 NOT_FOUND, bad sizes 400
// INVALID_SIZE and rendering an empty layout 409 EMPTY_LAYOUT.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/session"
)

const (
	// DefaultAddr is the listen address of the serve command.
	DefaultAddr = "127.0.0.1:8080"

	// maxBodyBytes bounds request bodies; every body is a small JSON object.
	maxBodyBytes = 1 << 16

	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server serves layout sessions.
type Server struct {
	store  session.Store
	runner *pipeline.Runner
	render pipeline.Options
	logger *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithRenderOptions sets the colors and scale used for image routes.
// Formats and Sizes are ignored.
func WithRenderOptions(opts pipeline.Options) Option {
	return func(s *Server) { s.render = opts }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server over store. Rendered images are cached through
// runner; a nil runner renders without caching.
func New(store session.Store, runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{store: store, runner: runner}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.healthz)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", s.deleteSession)
			r.Post("/rects", s.placeRect)
			r.Put("/center", s.recenter)
			r.Get("/layout", s.layout)
			r.Get("/image.{format}", s.image)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound("no route for %s %s", r.Method, r.URL.Path))
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
