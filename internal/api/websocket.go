package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsEvent is one message on the digest stream. Stage events carry only a
// stage name; the terminal event carries either the result or an error.
type wsEvent struct {
	Type   string         `json:"type"` // "stage", "result" or "error"
	Stage  string         `json:"stage,omitempty"`
	Result *digest.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// handleDigestWS streams pipeline progress over a websocket and finishes
// with the generated artifact. Parameters come in as query values since
// the connection starts as a GET.
func (s *Server) handleDigestWS(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		respondError(c, http.StatusBadRequest, errMissingURL)
		return
	}

	style, err := summarizer.ParseStyle(c.Query("style"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error(c.Request.Context(), "WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	// Stage callbacks arrive on the digest goroutine; funnel them through
	// a channel so only this goroutine writes to the connection.
	stages := make(chan string, 8)
	done := make(chan wsEvent, 1)

	go func() {
		res, err := s.digest.Digest(ctx, digest.Request{
			URL:     rawURL,
			Style:   style,
			Refresh: c.Query("refresh") == "true",
			OnStage: func(stage string) {
				select {
				case stages <- stage:
				default:
				}
			},
		})
		close(stages)
		if err != nil {
			done <- wsEvent{Type: "error", Error: err.Error()}
			return
		}
		done <- wsEvent{Type: "result", Result: res}
	}()

	for stage := range stages {
		if err := conn.WriteJSON(wsEvent{Type: "stage", Stage: stage}); err != nil {
			s.logger.Warn(ctx, "WebSocket write failed, client gone: %v", err)
			return
		}
	}

	final := <-done
	if final.Type == "error" {
		s.logger.Error(ctx, "Digest failed for %s: %s", rawURL, final.Error)
	}
	if err := conn.WriteJSON(final); err != nil {
		s.logger.Warn(ctx, "WebSocket final write failed: %v", err)
	}
}
