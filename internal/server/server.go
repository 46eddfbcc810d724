// Package server defines the application container that composes the
// gateway's shared dependencies (config, logger, HTTP server) and owns
// the serve/shutdown lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"poi-gateway/internal/config"
)

// Server holds the shared resources. It is not the HTTP server itself;
// the internal *http.Server is configured in SetupHTTPServer and run in
// Start.
type Server struct {
	Config config.ServerConfig
	Logger *zerolog.Logger

	httpServer *http.Server
}

// New constructs the container. Provider credentials are deliberately
// not loaded here: they load lazily on the first search request so a
// misconfigured process can still boot and report its state over HTTP.
func New(cfg config.ServerConfig, logger *zerolog.Logger) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
	}
}

// SetupHTTPServer configures the internal net/http server around the
// given router. Timeout config values are interpreted as seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Port).
		Str("env", s.Config.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully, letting in-flight requests
// finish until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}
