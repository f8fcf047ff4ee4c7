// Command gridsearchd serves the grid planners over HTTP.
//
// Settings come from GRIDSEARCH_* environment variables, optionally loaded
// from a .env file in the working directory:
//
//	GRIDSEARCH_ADDR            listen address (":8080")
//	GRIDSEARCH_MAX_CELLS       largest accepted map (250000)
//	GRIDSEARCH_MAX_EXPANSIONS  per-search expansion ceiling (1000000)
//	GRIDSEARCH_LOG_LEVEL       debug, info, warn or error (info)
//	GRIDSEARCH_CORS_ORIGINS    comma-separated allowed origins (all)
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridsearch/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", slog.String("error", err.Error()))
	}

	cfg, err := server.LoadConfig(os.Getenv)
	if err != nil {
		slog.Error("configuration", slog.String("error", err.Error()))
		os.Exit(2)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)
	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting gridsearchd",
		slog.String("addr", cfg.Addr),
		slog.Int("max_cells", cfg.MaxCells),
		slog.Int("max_expansions", cfg.MaxExpansions),
	)
	if err = server.New(cfg, log).Run(ctx); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
