// Package server provides the local HTTP dashboard and report API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/theirongolddev/pdash/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// DefaultAddr is used when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:8788"

// Config controls the server runtime behavior.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// Defaults prefill the form and fill fields a request leaves out.
	Defaults model.ProjectInputs
}

// Server serves the dashboard page and the report endpoints. It holds no
// per-request state; every request computes its own report.
type Server struct {
	cfg    Config
	logger *zerolog.Logger
	router *chi.Mux
}

// New returns a server with its routes configured.
func New(logger zerolog.Logger, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		cfg:    cfg,
		logger: &logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(Logger(s.logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", s.handleHealth)
	router.Get("/", s.handleIndex)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/report", s.handleReport)
		r.Post("/report", s.handleReport)
		r.Get("/report.pdf", s.handleReportPDF)
	})

	return router
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("starting server")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("graceful shutdown failed")
			return server.Close()
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
