package chapters

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Video descriptions commonly list chapters one per line, e.g.
// "00:00 Intro" or "1:02:03 Closing thoughts".
var reDescriptionLine = regexp.MustCompile(`(?m)^\s*(\d{1,2}:\d{2}(?::\d{2})?)\s+(.+)$`)

// Fenced or bare JSON array in a model reply.
var reJSONArray = regexp.MustCompile(`(?s)\[.*\]`)

// ParseDescription scans a free-text video description for chapter lines.
// Returns the chapters in declaration order; an empty slice means the
// description declares none.
func ParseDescription(description string) []Chapter {
	matches := reDescriptionLine.FindAllStringSubmatch(description, -1)
	if len(matches) == 0 {
		return nil
	}

	chs := make([]Chapter, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		if title == "" {
			continue
		}
		chs = append(chs, Chapter{Timestamp: m[1], Title: title})
	}
	return chs
}

// ParseModelJSON decodes a model-proposed chapter list. Replies frequently
// arrive wrapped in markdown code fences or prose, so the first JSON array
// in the text is extracted before unmarshalling.
func ParseModelJSON(raw string) ([]Chapter, error) {
	payload := reJSONArray.FindString(raw)
	if payload == "" {
		return nil, fmt.Errorf("no JSON array in model reply")
	}

	var chs []Chapter
	if err := json.Unmarshal([]byte(payload), &chs); err != nil {
		return nil, fmt.Errorf("unmarshal chapter list: %w", err)
	}

	out := chs[:0]
	for _, ch := range chs {
		if strings.TrimSpace(ch.Timestamp) == "" || strings.TrimSpace(ch.Title) == "" {
			continue
		}
		out = append(out, ch)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model reply contained no usable chapters")
	}
	return out, nil
}
