package digest

import (
	"context"

	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

// Service orchestrates one summarization request end to end: resolve the
// video, fetch and clean its captions, generate the requested artifact, and
// cache the result.
type Service interface {
	// Digest produces the artifact described by req.
	Digest(ctx context.Context, req Request) (*Result, error)
	// Transcript fetches (or re-uses) the cleaned transcript for a video URL.
	Transcript(ctx context.Context, rawURL string) (*TranscriptResult, error)
	// Invalidate drops every cached artifact for the video behind rawURL.
	Invalidate(rawURL string) error
}

// ProgressFunc receives coarse pipeline stage names as a digest progresses.
type ProgressFunc func(stage string)

// Request describes one artifact to generate.
type Request struct {
	URL     string
	Style   summarizer.Style
	Refresh bool         // bypass the cache and regenerate
	OnStage ProgressFunc // optional
}

// Result is a generated artifact plus the context it was generated in.
type Result struct {
	VideoID  string            `json:"video_id"`
	Metadata *youtube.Metadata `json:"metadata"`
	Style    string            `json:"style"`
	Content  string            `json:"content"`
	Source   string            `json:"source,omitempty"`
	Cached   bool              `json:"cached"`
}

// TranscriptResult is the fetched transcript plus display metadata.
type TranscriptResult struct {
	Metadata   *youtube.Metadata     `json:"metadata"`
	Transcript transcript.Transcript `json:"transcript"`
}
