// Package dateutil validates and formats publish dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a publish date that is not a valid calendar date.
var ErrInvalidDate = errors.New("invalid publish date")

// Layout is the ISO-8601 calendar-date form used throughout front matter.
const Layout = "2006-01-02"

// Parse converts an ISO-8601 date string to a time.Time.
// Returns ErrInvalidDate for empty input, wrong shape, or impossible
// calendar dates (time.Parse rejects e.g. 2024-02-30).
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: date cannot be empty", ErrInvalidDate)
	}

	t, err := time.Parse(Layout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, value)
	}
	return t, nil
}

// Validate reports whether value is a valid ISO-8601 calendar date.
func Validate(value string) error {
	_, err := Parse(value)
	return err
}

// Today returns the current date in ISO-8601 form.
// The time parameter allows injecting a fixed time for testing.
func Today(t time.Time) string {
	return t.Format(Layout)
}
