// Command api runs the POI search gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poi-gateway/internal/config"
	"poi-gateway/internal/logger"
	"poi-gateway/internal/router"
	"poi-gateway/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Server()
	log := logger.New(cfg.Env)

	// Warm the credential cache so a misconfigured deployment is visible
	// in the boot log. Not fatal: the process keeps serving and every
	// search request reports the configuration error.
	if _, err := config.LoadCredentials(); err != nil {
		log.Error().Err(err).Msg("provider credentials unavailable; search requests will fail")
	}

	srv := server.New(cfg, &log)
	srv.SetupHTTPServer(router.New(srv))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
