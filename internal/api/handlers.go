package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/exporter"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
)

type digestRequest struct {
	URL     string `json:"url" binding:"required"`
	Style   string `json:"style"`
	Refresh bool   `json:"refresh"`
}

func (s *Server) handleDigest(c *gin.Context) {
	var req digestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	style, err := summarizer.ParseStyle(req.Style)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := s.digest.Digest(c.Request.Context(), digest.Request{
		URL:     req.URL,
		Style:   style,
		Refresh: req.Refresh,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "Digest failed for %s: %v", req.URL, err)
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleTranscript(c *gin.Context) {
	videoID := c.Param("id")

	res, err := s.digest.Transcript(c.Request.Context(), videoID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Transcript fetch failed for %s: %v", videoID, err)
		respondError(c, statusFor(err), err)
		return
	}

	switch c.DefaultQuery("format", "plain") {
	case "plain":
		c.JSON(http.StatusOK, gin.H{
			"metadata": res.Metadata,
			"source":   res.Transcript.Source,
			"text":     res.Transcript.FullText(),
		})
	case "timestamped":
		c.JSON(http.StatusOK, gin.H{
			"metadata": res.Metadata,
			"source":   res.Transcript.Source,
			"lines":    res.Transcript.Lines(),
		})
	default:
		respondError(c, http.StatusBadRequest,
			fmt.Errorf("unknown format %q (want plain or timestamped)", c.Query("format")))
	}
}

func (s *Server) handleNotes(c *gin.Context) {
	videoID := c.Param("id")

	res, err := s.digest.Digest(c.Request.Context(), digest.Request{
		URL:     videoID,
		Style:   summarizer.StyleNotes,
		Refresh: c.Query("refresh") == "true",
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "Notes generation failed for %s: %v", videoID, err)
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleExport(c *gin.Context) {
	videoID := c.Param("id")

	style, err := summarizer.ParseStyle(c.Query("style"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := s.digest.Digest(c.Request.Context(), digest.Request{URL: videoID, Style: style})
	if err != nil {
		s.logger.Error(c.Request.Context(), "Export failed for %s: %v", videoID, err)
		respondError(c, statusFor(err), err)
		return
	}

	now := time.Now()
	kind := "Summary"
	if style == summarizer.StyleNotes {
		kind = "Notes"
	}

	switch c.DefaultQuery("format", "markdown") {
	case "text":
		name := exporter.Filename(res.Metadata.Title, kind, "txt", now)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(res.Content))
	case "markdown":
		md := exporter.RenderMarkdown(res.Content, res.Metadata, style.Label(), now)
		name := exporter.Filename(res.Metadata.Title, kind, "md", now)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "docx":
		md := exporter.RenderMarkdown(res.Content, res.Metadata, style.Label(), now)
		name := exporter.Filename(res.Metadata.Title, kind, "docx", now)
		path := filepath.Join(os.TempDir(), name)
		if err := exporter.WriteDocx(res.Metadata.Title, md, path); err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		defer os.Remove(path)
		c.FileAttachment(path, name)
	default:
		respondError(c, http.StatusBadRequest,
			fmt.Errorf("unknown format %q (want text, markdown or docx)", c.Query("format")))
	}
}

func (s *Server) handleInvalidate(c *gin.Context) {
	videoID := strings.TrimSpace(c.Param("id"))

	if err := s.digest.Invalidate(videoID); err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invalidated": videoID})
}
