package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/tube-digest/internal/chapters"
)

// Summarizer turns transcript text into generated artifacts.
type Summarizer interface {
	// Summarize produces a summary of the full transcript in the given style.
	Summarize(ctx context.Context, transcript string, style Style) (string, error)
	// SummarizeChapter produces a 2-3 sentence summary of one chapter's text.
	SummarizeChapter(ctx context.Context, title, transcript string) (string, error)
	// ProposeChapters asks the model for chapter boundaries when the video
	// description declares none.
	ProposeChapters(ctx context.Context, transcript string) ([]chapters.Chapter, error)
}
