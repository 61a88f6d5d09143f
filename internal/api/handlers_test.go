package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

type fakeService struct {
	digestErr      error
	lastReq        digest.Request
	invalidatedIDs []string
}

func (f *fakeService) Digest(ctx context.Context, req digest.Request) (*digest.Result, error) {
	f.lastReq = req
	if f.digestErr != nil {
		return nil, f.digestErr
	}
	return &digest.Result{
		VideoID:  "dQw4w9WgXcQ",
		Metadata: &youtube.Metadata{VideoID: "dQw4w9WgXcQ", Title: "Test Video"},
		Style:    req.Style.String(),
		Content:  "- point one\n- point two",
	}, nil
}

func (f *fakeService) Transcript(ctx context.Context, rawURL string) (*digest.TranscriptResult, error) {
	if f.digestErr != nil {
		return nil, f.digestErr
	}
	return &digest.TranscriptResult{
		Metadata: &youtube.Metadata{VideoID: rawURL, Title: "Test Video"},
		Transcript: transcript.Transcript{
			VideoID: rawURL,
			Source:  "YouTube Captions",
			Fragments: []transcript.Fragment{
				{StartSeconds: 0, Text: "hello"},
				{StartSeconds: 65, Text: "world"},
			},
		},
	}, nil
}

func (f *fakeService) Invalidate(rawURL string) error {
	f.invalidatedIDs = append(f.invalidatedIDs, rawURL)
	return nil
}

func newTestServer(svc digest.Service) *Server {
	return New(&config.Config{}, svc, logger.New("error"))
}

func TestHandleDigest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		digestErr  error
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       `{"url": "https://youtu.be/dQw4w9WgXcQ", "style": "concise"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "default style",
			body:       `{"url": "https://youtu.be/dQw4w9WgXcQ"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing url",
			body:       `{"style": "concise"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown style",
			body:       `{"url": "https://youtu.be/dQw4w9WgXcQ", "style": "haiku"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid url",
			body:       `{"url": "not-a-url"}`,
			digestErr:  youtube.ErrInvalidURL,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "video not found",
			body:       `{"url": "https://youtu.be/dQw4w9WgXcQ"}`,
			digestErr:  youtube.ErrVideoNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "captions disabled",
			body:       `{"url": "https://youtu.be/dQw4w9WgXcQ"}`,
			digestErr:  transcript.ErrTranscriptsDisabled,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{digestErr: tt.digestErr}
			router := newTestServer(svc).Router()

			req := httptest.NewRequest(http.MethodPost, "/api/digest", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestHandleDigestRefresh(t *testing.T) {
	svc := &fakeService{}
	router := newTestServer(svc).Router()

	body := `{"url": "https://youtu.be/dQw4w9WgXcQ", "refresh": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/digest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !svc.lastReq.Refresh {
		t.Error("Refresh flag not passed through to the digest service")
	}
}

func TestHandleTranscript(t *testing.T) {
	svc := &fakeService{}
	router := newTestServer(svc).Router()

	t.Run("plain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/transcript", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Text != "hello world" {
			t.Errorf("text = %q, want %q", resp.Text, "hello world")
		}
	})

	t.Run("timestamped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/transcript?format=timestamped", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp struct {
			Lines []struct {
				Timestamp string `json:"timestamp"`
				Text      string `json:"text"`
			} `json:"lines"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(resp.Lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(resp.Lines))
		}
		if resp.Lines[1].Timestamp != "01:05" {
			t.Errorf("second line timestamp = %q, want %q", resp.Lines[1].Timestamp, "01:05")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/transcript?format=xml", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleNotes(t *testing.T) {
	svc := &fakeService{}
	router := newTestServer(svc).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/videos/dQw4w9WgXcQ/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.lastReq.Style != summarizer.StyleNotes {
		t.Errorf("style = %v, want StyleNotes", svc.lastReq.Style)
	}
}

func TestHandleExport(t *testing.T) {
	svc := &fakeService{}
	router := newTestServer(svc).Router()

	t.Run("markdown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/export?style=concise", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, ".md") {
			t.Errorf("Content-Disposition = %q, want a .md attachment", got)
		}
		if !strings.Contains(w.Body.String(), "Test Video") {
			t.Error("markdown export missing the video title")
		}
	})

	t.Run("text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/export?format=text", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "- point one\n- point two" {
			t.Errorf("text export = %q, want raw content", w.Body.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/dQw4w9WgXcQ/export?format=pdf", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleInvalidate(t *testing.T) {
	svc := &fakeService{}
	router := newTestServer(svc).Router()

	req := httptest.NewRequest(http.MethodDelete, "/api/videos/dQw4w9WgXcQ/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(svc.invalidatedIDs) != 1 || svc.invalidatedIDs[0] != "dQw4w9WgXcQ" {
		t.Errorf("invalidated = %v, want [dQw4w9WgXcQ]", svc.invalidatedIDs)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestServer(&fakeService{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
