package summarizer

import "fmt"

// Style selects the shape of the generated artifact. The set is closed:
// adding a style means adding a prompt and extending the switch below, and
// the compiler will point at every place that needs updating.
type Style int

const (
	StyleConcise Style = iota
	StyleDetailed
	StyleChapter
	StyleNotes
)

// ParseStyle maps the API/CLI spelling of a style to its variant.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "concise", "":
		return StyleConcise, nil
	case "detailed":
		return StyleDetailed, nil
	case "chapter", "chapter-based":
		return StyleChapter, nil
	case "notes":
		return StyleNotes, nil
	default:
		return 0, fmt.Errorf("unknown summary style %q", s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleConcise:
		return "concise"
	case StyleDetailed:
		return "detailed"
	case StyleChapter:
		return "chapter"
	case StyleNotes:
		return "notes"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Label is the human-readable artifact heading used in exports.
func (s Style) Label() string {
	switch s {
	case StyleConcise:
		return "Concise Summary"
	case StyleDetailed:
		return "Detailed Summary"
	case StyleChapter:
		return "Chapter-Based Summary"
	case StyleNotes:
		return "Study Notes"
	default:
		return "Summary"
	}
}

const concisePrompt = `You are a YouTube video summarizer expert. Provide a concise summary of the video transcript below in 3-5 bullet points. Focus on the main ideas and key takeaways only. Keep the total summary within 250 words. Make it easy to understand and skim.

Transcript:
%s`

const detailedPrompt = `You are a YouTube video summarizer expert. Provide a detailed summary of the video transcript below in well-structured paragraphs. Include the main ideas, key points, and important examples. Keep the total summary within 500 words. Make it comprehensive yet easy to understand.

Transcript:
%s`

const chapterPrompt = `You are a YouTube video summarizer expert. Create a chapter-based summary of the video transcript below. Identify major topics and create logical chapters with headings. Under each chapter, provide a brief summary of the content. Include timestamps where possible. Keep the total summary within 500 words.

Transcript:
%s`

const notesPrompt = `You are a professional note-taker. Transform the following video transcript into structured, actionable study notes. Include:
1. INTRODUCTION: Brief overview of the video's topic
2. KEY POINTS: Main concepts and ideas
3. ACTION ITEMS: Specific tasks or applications mentioned
4. QUOTES: Important quotes or statements
5. RESOURCES: Any tools, websites, or references mentioned

Use bullet points and keep the notes organized, concise, and easy to reference. Include timestamps where appropriate. Make these notes perfect for study or reference purposes.

Transcript:
%s`

// prompt returns the generation prompt for the style with the transcript
// substituted in.
func (s Style) prompt(transcript string) string {
	switch s {
	case StyleConcise:
		return fmt.Sprintf(concisePrompt, transcript)
	case StyleDetailed:
		return fmt.Sprintf(detailedPrompt, transcript)
	case StyleChapter:
		return fmt.Sprintf(chapterPrompt, transcript)
	case StyleNotes:
		return fmt.Sprintf(notesPrompt, transcript)
	default:
		return fmt.Sprintf(concisePrompt, transcript)
	}
}

const chapterSectionPrompt = `You are a YouTube video summarizer expert. Provide a concise summary of this chapter section in 2-3 sentences. Focus on the main points only.

Chapter: %s
Transcript:
%s`

const proposeChaptersPrompt = `Analyze this YouTube video transcript and create logical chapters with timestamps.
Identify 5-8 main topics or sections in the video and provide a brief title for each.
Format your response as JSON with timestamps and titles. Example:
[
  {"timestamp": "00:00", "title": "Introduction"},
  {"timestamp": "05:30", "title": "Main Topic 1"},
  {"timestamp": "12:45", "title": "Main Topic 2"}
]

Transcript:
%s`
