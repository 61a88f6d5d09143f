package cache

import (
	"encoding/hex"
	"sync"

	"lukechampine.com/blake3"
)

// Kind identifies what an artifact is, independent of the parameters that
// produced it.
type Kind string

const (
	KindTranscript Kind = "transcript"
	KindSummary    Kind = "summary"
	KindNotes      Kind = "notes"
)

// Cache is an explicit, caller-owned store of generated artifacts keyed by
// (video ID, artifact kind). Generation parameters are folded into the
// lookup key, so a request with different parameters misses instead of
// returning a stale artifact. Entries live in memory only.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	byVideo map[string][]string
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]string),
		byVideo: make(map[string][]string),
	}
}

// key derives a fixed-size lookup key from the video ID, artifact kind, and
// any generation parameters.
func key(videoID string, kind Kind, params ...string) string {
	h := blake3.New(32, nil)
	h.Write([]byte(videoID))
	h.Write([]byte{0})
	h.Write([]byte(kind))
	for _, p := range params {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached artifact for the exact (videoID, kind, params)
// combination, if present.
func (c *Cache) Get(videoID string, kind Kind, params ...string) (string, bool) {
	k := key(videoID, kind, params...)

	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

// Put stores an artifact under the (videoID, kind, params) combination.
func (c *Cache) Put(videoID string, kind Kind, value string, params ...string) {
	k := key(videoID, kind, params...)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[k]; !exists {
		c.byVideo[videoID] = append(c.byVideo[videoID], k)
	}
	c.entries[k] = value
}

// Invalidate drops every artifact cached for the video, whatever its kind
// or parameters.
func (c *Cache) Invalidate(videoID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.byVideo[videoID] {
		delete(c.entries, k)
	}
	delete(c.byVideo, videoID)
}

// Len reports the number of cached artifacts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
