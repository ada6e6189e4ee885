package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saasdash/dashboard-api/internal/api"
	"github.com/saasdash/dashboard-api/internal/infrastructure/config"
	"github.com/saasdash/dashboard-api/internal/infrastructure/db/sqlite"
	"github.com/saasdash/dashboard-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db, err := sqlite.Connect(cfg.DB.Path, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("database unavailable")
	}

	if cfg.SeedDemo {
		if err := sqlite.SeedDemo(context.Background(), db); err != nil {
			log.Fatal().Err(err).Msg("demo seed failed")
		}
	}

	e := api.NewRouter(db, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
