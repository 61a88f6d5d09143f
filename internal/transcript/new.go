package transcript

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type implFetcher struct {
	client   *http.Client
	logger   logger.Logger
	language string
}

// NewFetcher creates a Fetcher that resolves caption tracks through the
// Innertube player endpoint and downloads them as timedtext XML.
// language is the preferred track language code (e.g. "en"); the first
// available track is used when no track matches.
func NewFetcher(client *http.Client, log logger.Logger, language string) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &implFetcher{
		client:   client,
		logger:   log,
		language: language,
	}
}
