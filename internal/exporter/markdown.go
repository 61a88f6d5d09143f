package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

// RenderMarkdown wraps generated content in the standard export layout:
// title, video information block, the content section, and a footer.
func RenderMarkdown(content string, meta *youtube.Metadata, sectionTitle string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	b.WriteString("## Video Information\n")
	fmt.Fprintf(&b, "- **Channel:** %s\n", meta.Channel)
	fmt.Fprintf(&b, "- **Duration:** %s\n", meta.Duration)
	fmt.Fprintf(&b, "- **Views:** %s\n", meta.Views)
	fmt.Fprintf(&b, "- **URL:** https://www.youtube.com/watch?v=%s\n\n", meta.VideoID)
	fmt.Fprintf(&b, "## %s\n", sectionTitle)
	b.WriteString(strings.TrimSpace(content))
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "Generated on %s by tube-digest\n", now.Format("2006-01-02"))

	return b.String()
}

// Filename composes "<title>_<kind>_<YYYYMMDD>.<ext>" with filesystem-unsafe
// runes stripped from the title.
func Filename(title, kind, ext string, now time.Time) string {
	base := sanitizeTitle(title)
	if base == "" {
		base = "video"
	}
	return fmt.Sprintf("%s_%s_%s.%s", base, kind, now.Format("20060102"), strings.TrimPrefix(ext, "."))
}

func sanitizeTitle(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
