package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

	// The ANDROID client returns caption tracks without requiring the
	// signature dance the WEB client performs.
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
)

// playerRequest is the Innertube /player request body.
type playerRequest struct {
	Context struct {
		Client struct {
			ClientName        string `json:"clientName"`
			ClientVersion     string `json:"clientVersion"`
			AndroidSDKVersion int    `json:"androidSdkVersion"`
			HL                string `json:"hl"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		TracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

// timedText mirrors the legacy timedtext XML served from a track baseUrl:
// <transcript><text start="1.3" dur="2.1">...</text></transcript>
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start   string `xml:"start,attr"`
	Dur     string `xml:"dur,attr"`
	Content string `xml:",chardata"`
}

// Fetch resolves the caption track list for videoID and downloads the best
// matching track as ordered fragments.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	tracks, err := f.listTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}

	track := f.selectTrack(tracks)
	if track == nil {
		return Transcript{}, fmt.Errorf("video %s: %w", videoID, ErrNoTranscript)
	}

	f.logger.Debug(ctx, "Downloading caption track (lang=%s, kind=%s) for %s",
		track.LanguageCode, track.Kind, videoID)

	fragments, err := f.downloadTrack(ctx, track.BaseURL)
	if err != nil {
		return Transcript{}, fmt.Errorf("download caption track: %w", err)
	}

	source := "YouTube Captions"
	if track.Kind == "asr" {
		source = "YouTube Auto-Generated Captions"
	}

	return Transcript{VideoID: videoID, Source: source, Fragments: fragments}, nil
}

func (f *implFetcher) listTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	var body playerRequest
	body.Context.Client.ClientName = innertubeClientName
	body.Context.Client.ClientVersion = innertubeClientVersion
	body.Context.Client.AndroidSDKVersion = 30
	body.Context.Client.HL = "en"
	body.VideoID = videoID

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, playerEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player request: unexpected status %d", resp.StatusCode)
	}

	var pr playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	if s := pr.PlayabilityStatus.Status; s != "" && s != "OK" {
		return nil, fmt.Errorf("video %s not playable (%s): %s", videoID, s, pr.PlayabilityStatus.Reason)
	}

	tracks := pr.Captions.TracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrTranscriptsDisabled)
	}
	return tracks, nil
}

// selectTrack prefers a manual track in the configured language, then any
// track in that language, then the first track of any kind.
func (f *implFetcher) selectTrack(tracks []captionTrack) *captionTrack {
	if len(tracks) == 0 {
		return nil
	}

	var langMatch *captionTrack
	for i := range tracks {
		t := &tracks[i]
		if t.LanguageCode != f.language {
			continue
		}
		if t.Kind != "asr" {
			return t
		}
		if langMatch == nil {
			langMatch = t
		}
	}
	if langMatch != nil {
		return langMatch
	}
	return &tracks[0]
}

func (f *implFetcher) downloadTrack(ctx context.Context, baseURL string) ([]Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build track request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track request: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read track body: %w", err)
	}

	return parseTimedText(data)
}

// parseTimedText decodes timedtext XML into ordered fragments. Cue text is
// HTML-entity escaped on the wire and may span lines.
func parseTimedText(data []byte) ([]Fragment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("unmarshal timedtext: %w", err)
	}

	fragments := make([]Fragment, 0, len(tt.Texts))
	for _, cue := range tt.Texts {
		text := strings.TrimSpace(html.UnescapeString(cue.Content))
		text = strings.ReplaceAll(text, "\n", " ")
		if text == "" {
			continue
		}

		start, err := strconv.ParseFloat(cue.Start, 64)
		if err != nil {
			return nil, fmt.Errorf("parse cue start %q: %w", cue.Start, err)
		}

		fragments = append(fragments, Fragment{
			StartSeconds: int(start),
			Text:         text,
		})
	}
	return fragments, nil
}
