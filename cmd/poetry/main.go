package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poetry/internal/auth"
	"poetry/internal/config"
	"poetry/internal/db"
	httpx "poetry/internal/http"
	"poetry/internal/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, _ := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	if cfg.APIKey == "" {
		log.Warn().Msg("API_KEY is not set; every /api request will fail")
	}

	gdb, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var visitors *auth.VisitorTokens
	if cfg.VisitorTokenSecret != "" {
		visitors = auth.NewVisitorTokens(cfg.VisitorTokenSecret)
	}

	r := httpx.NewRouter(cfg, gdb, visitors)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
