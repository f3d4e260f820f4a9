// Package util provides shared utility functions for hackagent.
package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses human-friendly refresh intervals. On top of the
// standard Go forms ("1h30m"), it accepts day and week suffixes:
//
//   - "30s" -> 30 seconds
//   - "1d"  -> 24 hours
//   - "2w"  -> 14 days
func ParseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		// Not <number><unit>; let the standard parser have it.
		return time.ParseDuration(s)
	}

	switch s[len(s)-1] {
	case 's':
		return time.Duration(n) * time.Second, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return time.ParseDuration(s)
	}
}
