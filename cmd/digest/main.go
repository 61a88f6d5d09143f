package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/cache"
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/exporter"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
	"github.com/nguyentantai21042004/tube-digest/pkg/executor"
)

type flags struct {
	ConfigPath string
	URL        string
	Style      string
	Refresh    bool
	Copy       bool
	Docx       bool
	OutDir     string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.StringVar(&f.URL, "url", "", "video URL or ID to digest (required)")
	flag.StringVar(&f.Style, "style", "concise", "summary style: concise, detailed, chapter, notes")
	flag.BoolVar(&f.Refresh, "refresh", false, "bypass the cache and regenerate")
	flag.BoolVar(&f.Copy, "copy", false, "copy the result to the clipboard")
	flag.BoolVar(&f.Docx, "docx", false, "also write a DOCX file next to the Markdown")
	flag.StringVar(&f.OutDir, "out", "", "write artifacts to this directory instead of stdout")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	if f.URL == "" {
		fmt.Fprintln(os.Stderr, "usage: digest -url <video URL> [-style concise|detailed|chapter|notes]")
		os.Exit(2)
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.New(cfg.Logging.Level)

	style, err := summarizer.ParseStyle(f.Style)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	svc := buildDigestService(ctx, cfg, log)

	res, err := svc.Digest(ctx, digest.Request{
		URL:     f.URL,
		Style:   style,
		Refresh: f.Refresh,
		OnStage: func(stage string) {
			fmt.Fprintf(os.Stderr, "... %s\n", stage)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Digest failed: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	md := exporter.RenderMarkdown(res.Content, res.Metadata, style.Label(), now)

	if f.OutDir != "" {
		if err := writeArtifacts(f, res.Metadata.Title, md, now); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(md)
	}

	if f.Copy {
		if err := exporter.CopyToClipboard(md); err != nil {
			fmt.Fprintf(os.Stderr, "Clipboard copy failed: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
	}
}

func writeArtifacts(f flags, title, md string, now time.Time) error {
	if err := os.MkdirAll(f.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	kind := "Summary"
	if f.Style == "notes" {
		kind = "Notes"
	}

	mdPath := filepath.Join(f.OutDir, exporter.Filename(title, kind, "md", now))
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", mdPath)

	if f.Docx {
		docxPath := filepath.Join(f.OutDir, exporter.Filename(title, kind, "docx", now))
		if err := exporter.WriteDocx(title, md, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", docxPath)
	}

	return nil
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
