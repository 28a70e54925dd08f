package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srvwb/core-api/internal/config"
	"github.com/srvwb/core-api/internal/httpserver"
	"github.com/srvwb/core-api/internal/logging"
	"github.com/srvwb/core-api/internal/store"
)

// main boots the service: config → logger → DB → schema → HTTP server.
func main() {
	// Load runtime config from environment (DATABASE_URL is mandatory).
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info", "json")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	// Ensure required tables/indexes exist before serving. Failure here is
	// fatal: the gateway must not accept events it cannot persist.
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureSchema(schemaCtx); err != nil {
		cancelSchema()
		log.Fatal().Err(err).Msg("schema setup failed")
	}
	cancelSchema()

	router := httpserver.NewRouter(log, db)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("log_level", cfg.LogLevel).
		Msg("server started")

	// Drain in-flight requests on SIGINT/SIGTERM, then release the pool.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
