package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"energy-econ/internal/api"
	"energy-econ/internal/config"
	"energy-econ/internal/logging"
	"energy-econ/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML config (optional)")
	flag.Parse()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *cfgPath), zap.Error(err))
	}

	if cfg.API.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	artifacts, err := newStore(cfg.API, logger)
	if err != nil {
		logger.Fatal("failed to open artifact store", zap.Error(err))
	}
	defer artifacts.Close()

	srv := &http.Server{
		Addr:         cfg.API.HTTPAddress(),
		Handler:      api.NewHandler(api.Deps{Config: cfg, Store: artifacts, Logger: logger}),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     zap.NewStdLog(logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.API.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore picks Redis when an address is configured, otherwise an in-process store.
func newStore(cfg config.APIConfig, logger *zap.Logger) (store.Store, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory artifact store", zap.Duration("ttl", cfg.ArtifactTTL))
		return store.NewMemory(cfg.ArtifactTTL, time.Minute), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r, err := store.NewRedis(ctx, cfg.RedisAddr, cfg.ArtifactTTL)
	if err != nil {
		return nil, err
	}
	logger.Info("using redis artifact store", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.ArtifactTTL))
	return r, nil
}
