package batch

import (
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/digest"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type implProcessor struct {
	cfg    *config.Config
	digest digest.Service
	logger logger.Logger
}

// New creates a Processor that digests every URL in a list file and writes
// the artifacts to the configured output directory.
func New(cfg *config.Config, svc digest.Service, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		digest: svc,
		logger: log,
	}
}
