package youtube

import "context"

// Client exposes the video metadata operations the pipeline needs.
type Client interface {
	// Metadata returns display metadata for a video. Without a Data API
	// key it degrades to thumbnail-only metadata rather than failing.
	Metadata(ctx context.Context, videoID string) (*Metadata, error)
	// Validate reports whether the video exists and is publicly reachable.
	Validate(ctx context.Context, videoID string) error
	// Description returns the video's full description text, used for
	// chapter scanning. Requires a Data API key; returns "" without one.
	Description(ctx context.Context, videoID string) (string, error)
}

// Metadata is the display information shown alongside generated artifacts.
type Metadata struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Duration  string `json:"duration"`
	Views     string `json:"views"`
	Thumbnail string `json:"thumbnail"`
}
