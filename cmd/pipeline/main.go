package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/tube-digest/internal/batch"
	"github.com/nguyentantai21042004/tube-digest/internal/cache"
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/watcher"
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
	log.Info(ctx, "Tube Digest Batch Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Lists: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	svc := buildDigestService(ctx, cfg, log)
	proc := batch.New(cfg, svc, log)

	// Create watcher with the batch processor as handler
	w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Batch pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Drop a .txt file with one video URL per line")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Batch pipeline stopped")
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

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
