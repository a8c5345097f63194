package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/config"
	"github.com/AlonsoDiaz/web-inventario/internal/infra"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"
	"github.com/AlonsoDiaz/web-inventario/internal/router"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Storage backend: postgres when DATABASE_URL is set, otherwise the
	// single-file JSON document on local disk.
	var (
		store repository.DocumentStore
		db    *gorm.DB
	)
	if cfg.DatabaseURL != "" {
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		store = repository.NewGormStore(db)
		log.Info().Msg("using postgres document store")
	} else {
		store, err = repository.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open data file")
		}
		log.Info().Str("file", cfg.DataFile).Msg("using file document store")
	}

	// Redis is optional — without it the pending-clients cache is skipped.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
			rdb = nil
		}
	}

	r := router.New(cfg, store, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventario backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
