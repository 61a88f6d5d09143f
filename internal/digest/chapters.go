package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/tube-digest/internal/chapters"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
)

// chapterDigest builds the chapter-based artifact: find boundaries
// (description first, then model-proposed), partition the transcript, and
// summarize each chapter. When no usable boundaries exist, or the boundary
// timestamps are malformed, it degrades to the flat chapter-style summary.
func (s *implService) chapterDigest(ctx context.Context, videoID string, tr transcript.Transcript, stage ProgressFunc) (string, error) {
	chs := s.findChapters(ctx, videoID, tr, stage)
	if len(chs) == 0 {
		return s.summarizer.Summarize(ctx, tr.FullText(), summarizer.StyleChapter)
	}

	spans, err := chapters.Partition(tr.Fragments, chs)
	if err != nil {
		s.logger.Warn(ctx, "Chapter partitioning failed for %s, using flat summary: %v", videoID, err)
		return s.summarizer.Summarize(ctx, tr.FullText(), summarizer.StyleChapter)
	}

	stage("summarizing chapters")

	var b strings.Builder
	b.WriteString("# Chapter-Based Summary\n\n")

	for i, span := range spans {
		fmt.Fprintf(&b, "## [%s] %s\n\n", span.Chapter.Timestamp, span.Chapter.Title)

		if span.Text == "" {
			b.WriteString("_No spoken content in this chapter._\n\n")
			continue
		}

		summary, err := s.summarizer.SummarizeChapter(ctx, span.Chapter.Title, span.Text)
		if err != nil {
			s.logger.Warn(ctx, "Chapter %d summary failed for %s: %v", i, videoID, err)
			summary = "Summary generation failed for this chapter."
		}
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String()) + "\n", nil
}

// findChapters returns boundaries from the video description when it
// declares any, otherwise asks the model to propose them. An empty result
// means neither source produced usable chapters.
func (s *implService) findChapters(ctx context.Context, videoID string, tr transcript.Transcript, stage ProgressFunc) []chapters.Chapter {
	desc, err := s.videos.Description(ctx, videoID)
	if err != nil {
		s.logger.Warn(ctx, "Could not fetch description for %s: %v", videoID, err)
	}
	if chs := chapters.ParseDescription(desc); len(chs) > 0 {
		s.logger.Debug(ctx, "Found %d chapters in description of %s", len(chs), videoID)
		return chs
	}

	stage("proposing chapters")
	chs, err := s.summarizer.ProposeChapters(ctx, tr.FullText())
	if err != nil {
		s.logger.Warn(ctx, "Model chapter proposal failed for %s: %v", videoID, err)
		return nil
	}
	s.logger.Debug(ctx, "Model proposed %d chapters for %s", len(chs), videoID)
	return chs
}
