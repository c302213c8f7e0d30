package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"crescita/internal/blob"
	"crescita/internal/config"
	"crescita/internal/engine"
	apphttp "crescita/internal/http"
	"crescita/internal/log"
	"crescita/internal/store"
	"crescita/internal/who"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	blobs, err := blob.Open(ctx, cfg.BlobConfig())
	if err != nil {
		logger.Error("Failed to initialize blob storage", "error", err, "driver", cfg.BlobDriver)
		os.Exit(1)
	}

	// The reference curves are a hard dependency: without them the chart
	// cannot render, so a missing or broken WHO blob stops startup.
	curves, err := who.Load(ctx, blobs, cfg.WHOBlob)
	if err != nil {
		logger.Error("Failed to load WHO reference curves", "error", err, "blob_name", cfg.WHOBlob)
		os.Exit(1)
	}
	logger.Info("WHO reference curves loaded", "blob_name", cfg.WHOBlob, "rows", curves.Len())

	// The growth records are not: a missing or malformed blob just means an
	// empty dataset. Load logs the fallback itself.
	growthStore := store.New(blobs, cfg.GrowthBlob, logger)
	growthStore.Load(ctx)

	eng := engine.New(growthStore)
	srv := apphttp.NewServer(":"+cfg.Port, eng, growthStore, curves)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting crescita server",
		"port", cfg.Port,
		"driver", cfg.BlobDriver,
		"records", growthStore.Count())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
