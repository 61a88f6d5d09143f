package transcript

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/tube-digest/internal/timestamp"
)

var (
	// ErrNoTranscript indicates the video has no caption track at all.
	ErrNoTranscript = errors.New("no transcript found for this video")
	// ErrTranscriptsDisabled indicates the uploader turned captions off.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
)

// Fragment is one timestamped unit of caption text as supplied by the
// caption source. Fragments are ordered by StartSeconds ascending; ties are
// possible and preserved in order of appearance.
type Fragment struct {
	StartSeconds int    `json:"start_seconds"`
	Text         string `json:"text"`
}

// Timestamp returns the fragment's start offset as an MM:SS string.
func (f Fragment) Timestamp() string {
	return timestamp.Format(f.StartSeconds)
}

// Transcript is the full ordered caption track for one video. It is a
// request-scoped value: built fresh per fetch and discarded after the
// derived artifacts are produced.
type Transcript struct {
	VideoID   string     `json:"video_id"`
	Source    string     `json:"source"`
	Fragments []Fragment `json:"fragments"`
}

// FullText joins all fragment texts with single spaces.
func (t Transcript) FullText() string {
	parts := make([]string, 0, len(t.Fragments))
	for _, f := range t.Fragments {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// Line is one row of the timestamped rendering of a transcript.
type Line struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// Lines renders every fragment with its MM:SS stamp, preserving order.
func (t Transcript) Lines() []Line {
	lines := make([]Line, 0, len(t.Fragments))
	for _, f := range t.Fragments {
		lines = append(lines, Line{Timestamp: f.Timestamp(), Text: f.Text})
	}
	return lines
}

var (
	fillerWords = []string{"um", "uh", "like", "you know", "sort of", "kind of"}
	fillerRes   = compileFillerPatterns()
	reSpaces    = regexp.MustCompile(`\s+`)
)

func compileFillerPatterns() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(fillerWords))
	for _, w := range fillerWords {
		res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return res
}

// Clean strips common spoken filler words and collapses runs of whitespace
// in every fragment. The original fragment ordering and timestamps are kept.
func Clean(t Transcript) Transcript {
	out := Transcript{VideoID: t.VideoID, Source: t.Source, Fragments: make([]Fragment, 0, len(t.Fragments))}
	for _, f := range t.Fragments {
		text := f.Text
		for _, re := range fillerRes {
			text = re.ReplaceAllString(text, "")
		}
		text = strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))
		out.Fragments = append(out.Fragments, Fragment{StartSeconds: f.StartSeconds, Text: text})
	}
	return out
}
