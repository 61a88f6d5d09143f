package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tube-digest/internal/chapters"
	"github.com/nguyentantai21042004/tube-digest/internal/timestamp"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

var errMissingURL = errors.New("url query parameter is required")

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, errorResponse{Error: err.Error()})
}

// statusFor maps pipeline errors to HTTP status codes. Client mistakes
// (bad URL, bad timestamp) are 4xx; upstream failures are 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, youtube.ErrInvalidURL),
		errors.Is(err, timestamp.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, youtube.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, transcript.ErrNoTranscript),
		errors.Is(err, transcript.ErrTranscriptsDisabled),
		errors.Is(err, chapters.ErrNoChapters):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
