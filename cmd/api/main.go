// Package main is the entry point for the work tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/joho/godotenv"

	"github.com/pkordes/worktracker/internal/config"
	"github.com/pkordes/worktracker/internal/handler"
	"github.com/pkordes/worktracker/internal/handler/gen"
	"github.com/pkordes/worktracker/internal/middleware"
	"github.com/pkordes/worktracker/internal/repo"
	"github.com/pkordes/worktracker/internal/service"
	"github.com/pkordes/worktracker/migrations"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The default logger writes plain text to stderr until ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logLevel, _ := cfg.SlogLevel() // validated by config.Load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// --- Migrations -------------------------------------------------------
	if cfg.AutoMigrate {
		if err := migrate(ctx, cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	// --- Services ---------------------------------------------------------
	uow := repo.NewUnitOfWork(pool)
	server := handler.NewServer(
		service.NewRecordService(uow),
		service.NewTagService(uow),
		service.NewExportService(uow),
		logger,
	)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → MaxBodySize.
	// Recoverer sits inside the logger so a recovered panic is logged as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins, logger))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	// Register handlers. gen.NewStrictHandlerWithOptions adapts our
	// StrictServerInterface implementation to the lower-level ServerInterface
	// chi expects; the options give every error the JSON envelope.
	r.Get("/openapi.yaml", handler.GetOpenAPI)
	r.Mount("/", gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(server, nil, server.StrictOptions()),
		server.RouterOptions(),
	))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	}
	logger.Info("shutting down server", "timeout", cfg.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// migrate applies pending goose migrations over a short-lived database/sql
// connection; goose does not speak pgxpool.
func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied", "count", applied)
	return nil
}
