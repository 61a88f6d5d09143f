package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a timestamp string cannot be decoded.
var ErrMalformed = errors.New("malformed timestamp")

// Format converts a non-negative offset in seconds to a zero-padded MM:SS
// string. No hour component is produced; offsets of 6000s and above roll the
// minute field past two digits, so callers dealing with hour-scale videos
// should parse the three-component form instead of relying on a round-trip.
func Format(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Parse decodes a colon-separated timestamp into an offset in seconds.
// Two components are read as MM:SS, three as H:MM:SS. Minute or second
// values of 60 and above are accepted as-is to match lenient upstream
// formatting. Empty strings, non-numeric or negative components, and any
// other component count fail with ErrMalformed.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformed)
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has %d components", ErrMalformed, s, len(parts))
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: negative component in %q", ErrMalformed, s)
		}
		total = total*60 + n
	}

	return total, nil
}
