package digest

import (
	"github.com/nguyentantai21042004/tube-digest/internal/cache"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

type implService struct {
	videos     youtube.Client
	fetcher    transcript.Fetcher
	fallback   transcript.Fetcher // nil when audio transcription is disabled
	summarizer summarizer.Summarizer
	cache      *cache.Cache
	logger     logger.Logger
}

// New creates a digest Service. fallback may be nil; when set it is tried
// for videos whose caption track is missing or disabled.
func New(
	videos youtube.Client,
	fetcher transcript.Fetcher,
	fallback transcript.Fetcher,
	sum summarizer.Summarizer,
	artifacts *cache.Cache,
	log logger.Logger,
) Service {
	if artifacts == nil {
		artifacts = cache.New()
	}
	return &implService{
		videos:     videos,
		fetcher:    fetcher,
		fallback:   fallback,
		summarizer: sum,
		cache:      artifacts,
		logger:     log,
	}
}
