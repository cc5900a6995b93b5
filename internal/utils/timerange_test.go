package utils

import (
	"errors"
	"testing"
)

func TestParseTimeRange(t *testing.T) {
	start, end, err := ParseTimeRange("2025-03-10T09:00:00Z", "2025-03-10T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != "2025-03-10 09:00:00" {
		t.Errorf("start = %q, want %q", start, "2025-03-10 09:00:00")
	}
	if end != "2025-03-10 10:30:00" {
		t.Errorf("end = %q, want %q", end, "2025-03-10 10:30:00")
	}
}

func TestParseTimeRangeConvertsToUTC(t *testing.T) {
	// 09:00 at UTC-4 is 13:00 UTC.
	start, end, err := ParseTimeRange("2025-03-10T09:00:00-04:00", "2025-03-10T10:00:00-04:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != "2025-03-10 13:00:00" {
		t.Errorf("start = %q, want %q", start, "2025-03-10 13:00:00")
	}
	if end != "2025-03-10 14:00:00" {
		t.Errorf("end = %q, want %q", end, "2025-03-10 14:00:00")
	}
}

func TestParseTimeRangeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantRange  bool
	}{
		{"garbage start", "not-a-time", "2025-03-10T10:00:00Z", false},
		{"garbage end", "2025-03-10T09:00:00Z", "tomorrow", false},
		{"end before start", "2025-03-10T10:00:00Z", "2025-03-10T09:00:00Z", true},
		{"zero duration", "2025-03-10T09:00:00Z", "2025-03-10T09:00:00Z", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseTimeRange(tc.start, tc.end)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrInvalidRange); got != tc.wantRange {
				t.Errorf("errors.Is(err, ErrInvalidRange) = %v, want %v (err=%v)", got, tc.wantRange, err)
			}
		})
	}
}
