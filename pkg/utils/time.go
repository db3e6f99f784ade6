package utils

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidTime = errors.New("time must be RFC3339 or YYYY-MM-DD")

// ParseTime accepts RFC3339 timestamps and plain dates. A plain date is midnight UTC,
// or the following midnight when endOfDay is set so the whole day is included.
func ParseTime(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}
