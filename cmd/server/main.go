// Command server is the Arena directory API server.
//
// Usage:
//
//	server
//	API_PORT=8080 CATALOG_DRIVER=sqlite DB_PATH=./arena.db server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meur/arena/internal/api"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/storage"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Catalogs are loaded once and served as an immutable snapshot
	src, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open catalog source", "driver", cfg.CatalogDriver, "error", err)
		os.Exit(1)
	}
	catalogs, err := storage.Load(ctx, src)
	src.Close()
	if err != nil {
		logger.Error("Failed to load catalogs", "error", err)
		os.Exit(1)
	}
	logger.Info("Catalogs loaded",
		"driver", cfg.CatalogDriver,
		"tournaments", catalogs.Tournaments.Len(),
		"players", catalogs.Players.Len(),
		"teams", catalogs.Teams.Len())

	server := api.New(catalogs, cfg, logger)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Arena API", "addr", cfg.Addr(), "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
