package utils

import (
	"time"

	"github.com/jstrick/dojo/internal/constants"
)

// Today returns the current date string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// Now returns the current timestamp string (RFC3339).
func Now() string {
	return time.Now().Format(constants.TimestampFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
// time.Parse rejects impossible dates like 2024-02-30, so this also
// covers calendar validity.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidDate checks if the string is a real calendar date in YYYY-MM-DD form.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ParseTimestamp parses a timestamp string in the standard format (RFC3339).
func ParseTimestamp(ts string) (time.Time, error) {
	return time.Parse(constants.TimestampFormat, ts)
}
