// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/reelpick/docs" // registers the swagger spec
	"github.com/tomtom215/reelpick/internal/api"
	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/config"
	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/preferences"
	"github.com/tomtom215/reelpick/internal/recommend"
	"github.com/tomtom215/reelpick/internal/supervisor"
	"github.com/tomtom215/reelpick/internal/supervisor/services"
	"github.com/tomtom215/reelpick/internal/tmdb"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	storeGCInterval     = 10 * time.Minute
	storeGCDiscardRatio = 0.5
	startupPingTimeout  = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger, the configured one needs cfg.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Str("preferences_backend", cfg.Preferences.Backend).
		Msg("Starting Reelpick")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tmdbAPI := tmdb.NewCircuitBreakerClient(tmdb.NewClient(&cfg.TMDB), tmdb.DefaultBreakerSettings())
	checkTMDB(ctx, tmdbAPI)

	store, err := preferences.New(ctx, &cfg.Preferences)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open preferences store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close preferences store")
		}
	}()

	scorer, err := recommend.NewScorer(tmdbAPI, recommend.ConfigFrom(&cfg.Recommend), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation scorer")
	}

	svc := catalog.NewService(tmdbAPI, store, scorer, catalog.OptionsFrom(&cfg.TMDB))

	handler := api.NewHandler(svc, cfg.Server.Timeout, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Server))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second, // room to write the handler's timeout error
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if gc, ok := store.(services.ValueLogCollector); ok {
		tree.AddDataService(services.NewStoreGCService(gc, storeGCInterval, storeGCDiscardRatio))
		logging.Info().Dur("interval", storeGCInterval).Msg("Preferences GC service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one value and never closes the channel.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Reelpick stopped")
}

// checkTMDB tests the connection at startup. A failure is only a warning:
// browsing reports its own errors once TMDB is reachable again.
func checkTMDB(ctx context.Context, c tmdb.API) {
	ctx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		logging.Warn().Err(err).Msg("Could not connect to TMDB API. Check your API key and internet connection.")
		return
	}
	logging.Info().Msg("Connected to TMDB")
}
