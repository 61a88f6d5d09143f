package youtube

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type implClient struct {
	client *http.Client
	apiKey string
	logger logger.Logger
}

// New creates a Client backed by the YouTube Data API v3. apiKey may be
// empty, in which case metadata degrades to thumbnail-only and validation
// falls back to the thumbnail probe.
func New(client *http.Client, apiKey string, log logger.Logger) Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &implClient{
		client: client,
		apiKey: apiKey,
		logger: log,
	}
}
