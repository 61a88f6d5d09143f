package youtube

import (
	"errors"
	"regexp"
)

// ErrInvalidURL is returned when no video ID can be extracted from a URL.
var ErrInvalidURL = errors.New("invalid YouTube URL")

// Video IDs are 11 characters from [0-9A-Za-z_-]. The patterns cover
// standard watch URLs, short youtu.be links, and embedded player URLs.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([0-9A-Za-z_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of any of the common
// YouTube URL formats. A bare video ID is also accepted.
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	if bareVideoID.MatchString(url) {
		return url, nil
	}
	return "", ErrInvalidURL
}
