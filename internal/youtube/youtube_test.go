package youtube

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"standard watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch URL with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"mobile URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare video ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"not a video URL", "https://example.com/page", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVideoID(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("error = %v, want ErrInvalidURL", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestHumanizeISO8601(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PT1H2M3S", "1h 2m 3s"},
		{"PT15M33S", "15m 33s"},
		{"PT45S", "45s"},
		{"PT2H", "2h"},
		{"", "Unknown"},
		{"garbage", "Unknown"},
	}

	for _, tt := range tests {
		if got := humanizeISO8601(tt.input); got != tt.want {
			t.Errorf("humanizeISO8601(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatViewCount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234567", "1,234,567"},
		{"999", "999"},
		{"1000", "1,000"},
		{"", "Unknown"},
		{"n/a", "Unknown"},
	}

	for _, tt := range tests {
		if got := formatViewCount(tt.input); got != tt.want {
			t.Errorf("formatViewCount(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
