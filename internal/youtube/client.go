package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/jpeg"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const videosEndpoint = "https://www.googleapis.com/youtube/v3/videos"

// ErrVideoNotFound is returned when a video does not exist or is private.
var ErrVideoNotFound = errors.New("video not found or may be private")

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			Thumbnails   map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *implClient) Metadata(ctx context.Context, videoID string) (*Metadata, error) {
	thumbnail := fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID)

	if c.apiKey == "" {
		c.logger.Debug(ctx, "No YouTube API key configured, returning thumbnail-only metadata for %s", videoID)
		return &Metadata{
			VideoID:   videoID,
			Title:     "Unknown",
			Channel:   "Unknown",
			Duration:  "Unknown",
			Views:     "Unknown",
			Thumbnail: thumbnail,
		}, nil
	}

	vr, err := c.fetchVideo(ctx, videoID, "snippet,contentDetails,statistics")
	if err != nil {
		return nil, err
	}
	if len(vr.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}

	item := vr.Items[0]

	meta := &Metadata{
		VideoID:   videoID,
		Title:     item.Snippet.Title,
		Channel:   item.Snippet.ChannelTitle,
		Duration:  humanizeISO8601(item.ContentDetails.Duration),
		Views:     formatViewCount(item.Statistics.ViewCount),
		Thumbnail: thumbnail,
	}
	if high, ok := item.Snippet.Thumbnails["high"]; ok && high.URL != "" {
		meta.Thumbnail = high.URL
	}
	return meta, nil
}

func (c *implClient) Validate(ctx context.Context, videoID string) error {
	if c.apiKey != "" {
		vr, err := c.fetchVideo(ctx, videoID, "snippet")
		if err == nil {
			if len(vr.Items) == 0 {
				return fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
			}
			return nil
		}
		c.logger.Warn(ctx, "Data API validation failed, falling back to thumbnail probe: %v", err)
	}
	return c.probeThumbnail(ctx, videoID)
}

func (c *implClient) Description(ctx context.Context, videoID string) (string, error) {
	if c.apiKey == "" {
		return "", nil
	}

	vr, err := c.fetchVideo(ctx, videoID, "snippet")
	if err != nil {
		return "", err
	}
	if len(vr.Items) == 0 {
		return "", fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}
	return vr.Items[0].Snippet.Description, nil
}

func (c *implClient) fetchVideo(ctx context.Context, videoID, part string) (*videosResponse, error) {
	q := url.Values{}
	q.Set("id", videoID)
	q.Set("key", c.apiKey)
	q.Set("part", part)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videosEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build videos request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("videos request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("videos request: unexpected status %d", resp.StatusCode)
	}

	var vr videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode videos response: %w", err)
	}
	return &vr, nil
}

// probeThumbnail checks whether the default thumbnail exists. YouTube serves
// a 120x90 placeholder for missing videos, so that exact size means the
// video is gone.
func (c *implClient) probeThumbnail(ctx context.Context, videoID string) error {
	thumbURL := fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbURL, nil)
	if err != nil {
		return fmt.Errorf("build thumbnail request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("thumbnail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}

	cfg, err := jpeg.DecodeConfig(resp.Body)
	if err != nil {
		return fmt.Errorf("decode thumbnail: %w", err)
	}
	if cfg.Width == 120 && cfg.Height == 90 {
		return fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}
	return nil
}

var reDurationPart = regexp.MustCompile(`(\d+)([HMS])`)

// humanizeISO8601 rewrites an ISO-8601 duration (PT1H2M3S) as "1h 2m 3s".
func humanizeISO8601(d string) string {
	d = strings.TrimPrefix(d, "PT")
	if d == "" {
		return "Unknown"
	}

	units := map[string]string{"H": "h", "M": "m", "S": "s"}
	var parts []string
	for _, m := range reDurationPart.FindAllStringSubmatch(d, -1) {
		parts = append(parts, m[1]+units[m[2]])
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " ")
}

// formatViewCount adds thousands separators to the raw view count string.
func formatViewCount(raw string) string {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "Unknown"
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
