package api

import (
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

// Server exposes the digest pipeline over HTTP.
type Server struct {
	cfg    *config.Config
	digest digest.Service
	logger logger.Logger
}

// New creates the HTTP server around an assembled digest service.
func New(cfg *config.Config, svc digest.Service, log logger.Logger) *Server {
	return &Server{
		cfg:    cfg,
		digest: svc,
		logger: log,
	}
}
