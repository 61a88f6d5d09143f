package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/exporter"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
)

// Process reads a URL list file (one video URL per line, blank lines and
// #-comments skipped), digests every video, and writes a Markdown and a DOCX
// artifact per video into the output directory. The list file is moved to
// the archived directory when done so it is not re-processed.
func (p *implProcessor) Process(ctx context.Context, listPath string) error {
	startTime := time.Now()

	data, err := os.ReadFile(listPath)
	if err != nil {
		return fmt.Errorf("read url list: %w", err)
	}

	urls := parseURLList(string(data))
	if len(urls) == 0 {
		p.logger.Warn(ctx, "No URLs in %s, archiving as-is", listPath)
		return p.archive(ctx, listPath)
	}

	style, err := summarizer.ParseStyle(p.cfg.Batch.Style)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p.logger.Info(ctx, "Processing %d URLs from %s (style: %s)", len(urls), listPath, style)

	successCount := 0
	failCount := 0

	for i, url := range urls {
		p.logger.Info(ctx, "[%d/%d] Digesting: %s", i+1, len(urls), url)

		if err := p.processOne(ctx, url, style); err != nil {
			p.logger.Error(ctx, "Failed to digest %s: %v", url, err)
			failCount++
			continue
		}
		successCount++
	}

	p.logger.Info(ctx, "Batch complete: %d success, %d failed in %s",
		successCount, failCount, time.Since(startTime))

	return p.archive(ctx, listPath)
}

func (p *implProcessor) processOne(ctx context.Context, url string, style summarizer.Style) error {
	res, err := p.digest.Digest(ctx, digest.Request{URL: url, Style: style})
	if err != nil {
		return err
	}

	now := time.Now()
	md := exporter.RenderMarkdown(res.Content, res.Metadata, style.Label(), now)

	kind := kindLabel(style)
	mdPath := filepath.Join(p.cfg.Paths.Output, exporter.Filename(res.Metadata.Title, kind, "md", now))
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, exporter.Filename(res.Metadata.Title, kind, "docx", now))
	if err := exporter.WriteDocx(res.Metadata.Title, md, docxPath); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s", res.VideoID, mdPath)
	return nil
}

func (p *implProcessor) archive(ctx context.Context, listPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(listPath))
	if err := os.Rename(listPath, dest); err != nil {
		return fmt.Errorf("archive url list: %w", err)
	}

	p.logger.Debug(ctx, "Archived %s -> %s", listPath, dest)
	return nil
}

func kindLabel(style summarizer.Style) string {
	if style == summarizer.StyleNotes {
		return "Notes"
	}
	return "Summary"
}

func parseURLList(content string) []string {
	var urls []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
