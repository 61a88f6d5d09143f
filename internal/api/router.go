package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/digest", s.handleDigest)
		api.GET("/digest/ws", s.handleDigestWS)
		api.GET("/videos/:id/transcript", s.handleTranscript)
		api.POST("/videos/:id/notes", s.handleNotes)
		api.GET("/videos/:id/export", s.handleExport)
		api.DELETE("/videos/:id/cache", s.handleInvalidate)
	}

	return r
}
