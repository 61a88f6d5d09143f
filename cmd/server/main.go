package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/api"
	"github.com/nguyentantai21042004/tube-digest/internal/cache"
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
	"github.com/nguyentantai21042004/tube-digest/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Tube Digest API")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Gemini API keys: %d", len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Configuration loaded successfully")

	svc := buildDigestService(ctx, cfg, log)
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.New(cfg, svc, log).Router(),
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Addr())

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Tube Digest API stopped")
}

// buildDigestService wires the pipeline dependencies from configuration.
func buildDigestService(ctx context.Context, cfg *config.Config, log logger.Logger) digest.Service {
	videos := youtube.New(nil, cfg.YouTube.APIKey, log)
	fetcher := transcript.NewFetcher(nil, log, cfg.YouTube.Language)

	var fallback transcript.Fetcher
	if cfg.Fallback.Enabled {
		fallback = transcript.NewFallback(transcript.FallbackOptions{
			YtDlpPath:   cfg.Fallback.YtDlpPath,
			WhisperPath: cfg.Fallback.WhisperPath,
			ModelPath:   cfg.Fallback.ModelPath,
			Language:    cfg.YouTube.Language,
			Threads:     cfg.Fallback.Threads,
			TempDir:     cfg.Paths.Temp,
		}, executor.New(), log)
		log.Info(ctx, "Audio transcription fallback enabled (whisper: %s)", cfg.Fallback.WhisperPath)
	}

	sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)

	return digest.New(videos, fetcher, fallback, sum, cache.New(), log)
}
