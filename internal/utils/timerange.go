package utils

import (
	"errors"
	"time"
)

// DBTimeLayout is the DATETIME format stored in MySQL (UTC). Lexicographic
// ordering of strings in this layout equals chronological ordering, which
// the booking overlap predicate relies on.
const DBTimeLayout = "2006-01-02 15:04:05"

// ErrInvalidRange is returned when a requested interval is empty or
// inverted (end <= start).
var ErrInvalidRange = errors.New("end must be after start")

// ParseTimeRange parses RFC3339 start/end strings and returns them in
// DBTimeLayout (UTC). It fails when either timestamp is malformed or when
// the half-open interval [start, end) would be empty.
func ParseTimeRange(start, end string) (string, string, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", "", err
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return "", "", err
	}
	if !e.After(s) {
		return "", "", ErrInvalidRange
	}
	return s.UTC().Format(DBTimeLayout), e.UTC().Format(DBTimeLayout), nil
}
