package transcript

import "context"

// Fetcher retrieves the ordered caption track for a video.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (Transcript, error)
}
