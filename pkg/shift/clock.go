package shift

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock indicates a time-of-day string that is not HH:mm.
var ErrInvalidClock = errors.New("invalid clock time")

// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ParseClock parses a 24-hour HH:mm string into minutes since midnight.
// Hours run 0-23; 24:00 is out of range.
func ParseClock(v string) (int, error) {
	var h, m int
	if len(v) != 5 || v[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if _, err := fmt.Sscanf(v, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as HH:mm.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a YYYY-MM-DD string into a local-midnight time.
func ParseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return t, nil
}

// DateKey renders a time as the canonical YYYY-MM-DD bucket key.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}
