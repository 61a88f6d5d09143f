package chapters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/tube-digest/internal/timestamp"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
)

// ErrNoChapters is returned when Partition is called with an empty chapter
// list. A chapterless transcript is not partitioned; the caller falls back
// to a whole-transcript summary instead.
var ErrNoChapters = errors.New("no chapters to partition")

// Chapter is a named section of the video with a declared or inferred start
// time. Timestamp holds the raw MM:SS or H:MM:SS string as supplied by the
// boundary source; it is decoded once during partitioning.
type Chapter struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
}

// ChapterTranscript is the text a single chapter owns: the space-joined
// fragments whose start offsets fall inside the chapter's half-open span.
type ChapterTranscript struct {
	Chapter      Chapter `json:"chapter"`
	StartSeconds int     `json:"start_seconds"`
	Text         string  `json:"text"`
}

// Partition assigns every fragment to exactly one chapter and returns one
// ChapterTranscript per input chapter, in order, none omitted.
//
// A chapter's span runs from its own start up to (but excluding) the next
// chapter's start; the final chapter is unbounded. Fragments starting before
// the first chapter are clamped into the first chapter rather than dropped.
//
// Both inputs must already be ordered by start time; the scan advances a
// single chapter cursor and never moves it backward, so disorder in either
// sequence is a caller error, not something Partition detects or repairs.
//
// Any chapter timestamp that fails to decode aborts the whole partition with
// timestamp.ErrMalformed.
func Partition(fragments []transcript.Fragment, chs []Chapter) ([]ChapterTranscript, error) {
	if len(chs) == 0 {
		return nil, ErrNoChapters
	}

	starts := make([]int, len(chs))
	for i, ch := range chs {
		sec, err := timestamp.Parse(ch.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("chapter %d (%q): %w", i, ch.Title, err)
		}
		starts[i] = sec
	}

	texts := make([]*strings.Builder, len(chs))
	for i := range texts {
		texts[i] = &strings.Builder{}
	}

	cursor := 0
	for _, f := range fragments {
		// Advance while the next chapter has begun by this fragment's start.
		for cursor+1 < len(starts) && starts[cursor+1] <= f.StartSeconds {
			cursor++
		}
		b := texts[cursor]
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Text)
	}

	out := make([]ChapterTranscript, len(chs))
	for i, ch := range chs {
		out[i] = ChapterTranscript{
			Chapter:      ch,
			StartSeconds: starts[i],
			Text:         strings.TrimSpace(texts[i].String()),
		}
	}
	return out, nil
}
