package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/MatchPredictor/internal/analyzer"
	"github.com/Alias1177/MatchPredictor/internal/config"
	"github.com/Alias1177/MatchPredictor/internal/server"
	"github.com/Alias1177/MatchPredictor/internal/storage"
	"github.com/Alias1177/MatchPredictor/internal/tiers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration failed")
	}

	setupLogging(cfg.LogLevel)

	registry := tiers.DefaultRegistry()
	var store server.TeamStore
	if cfg.DatabaseURL != "" {
		db, dbErr := storage.New(cfg.DatabaseURL)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("connecting to database failed")
		}
		defer db.Close()

		registry, err = db.LoadRegistry()
		if err != nil {
			log.Fatal().Err(err).Msg("loading tier registry failed")
		}
		store = db
	}

	a := analyzer.New(registry, analyzer.WithMaxGoals(cfg.MaxGoalsPerSide))
	srv := server.New(a, store, cfg.RateLimitPerSec, cfg.RateLimitBurst)
	httpServer := server.NewHTTPServer(cfg.HTTPAddr, srv.Handler())

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatal().Err(serveErr).Msg("http server failed")
		}
	}()

	waitForShutdown(httpServer, time.Duration(cfg.ShutdownTimeout)*time.Second)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// waitForShutdown blocks until SIGINT/SIGTERM and drains in-flight requests
// before returning.
func waitForShutdown(httpServer *http.Server, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
