package digest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/cache"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

func (s *implService) Digest(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()
	stage := stageReporter(req.OnStage)

	stage("resolving video")
	videoID, err := youtube.ExtractVideoID(req.URL)
	if err != nil {
		return nil, err
	}

	if err := s.videos.Validate(ctx, videoID); err != nil {
		return nil, err
	}

	meta, err := s.videos.Metadata(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	kind := cache.KindSummary
	if req.Style == summarizer.StyleNotes {
		kind = cache.KindNotes
	}

	if !req.Refresh {
		if content, ok := s.cache.Get(videoID, kind, req.Style.String()); ok {
			s.logger.Debug(ctx, "Cache hit for %s (%s)", videoID, req.Style)
			return &Result{
				VideoID:  videoID,
				Metadata: meta,
				Style:    req.Style.String(),
				Content:  content,
				Cached:   true,
			}, nil
		}
	}

	stage("fetching transcript")
	tr, err := s.fetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	tr = transcript.Clean(tr)

	stage("generating " + req.Style.String())
	var content string
	if req.Style == summarizer.StyleChapter {
		content, err = s.chapterDigest(ctx, videoID, tr, stage)
	} else {
		content, err = s.summarizer.Summarize(ctx, tr.FullText(), req.Style)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Put(videoID, kind, content, req.Style.String())

	s.logger.Info(ctx, "Digest complete for %s (%s) in %s", videoID, req.Style, time.Since(startTime))

	return &Result{
		VideoID:  videoID,
		Metadata: meta,
		Style:    req.Style.String(),
		Content:  content,
		Source:   tr.Source,
	}, nil
}

func (s *implService) Transcript(ctx context.Context, rawURL string) (*TranscriptResult, error) {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.videos.Metadata(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	tr, err := s.fetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	tr = transcript.Clean(tr)

	s.cache.Put(videoID, cache.KindTranscript, tr.FullText())

	return &TranscriptResult{Metadata: meta, Transcript: tr}, nil
}

func (s *implService) Invalidate(rawURL string) error {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return err
	}
	s.cache.Invalidate(videoID)
	return nil
}

// fetchTranscript tries the caption track first and falls back to local
// audio transcription when configured.
func (s *implService) fetchTranscript(ctx context.Context, videoID string) (transcript.Transcript, error) {
	tr, err := s.fetcher.Fetch(ctx, videoID)
	if err == nil {
		return tr, nil
	}

	captionless := errors.Is(err, transcript.ErrNoTranscript) || errors.Is(err, transcript.ErrTranscriptsDisabled)
	if !captionless || s.fallback == nil {
		return transcript.Transcript{}, err
	}

	s.logger.Warn(ctx, "No caption track for %s, falling back to audio transcription", videoID)
	return s.fallback.Fetch(ctx, videoID)
}

func stageReporter(fn ProgressFunc) ProgressFunc {
	if fn == nil {
		return func(string) {}
	}
	return fn
}
