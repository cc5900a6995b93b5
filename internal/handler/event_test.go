package handler

import (
	"net/http"
	"testing"

	"github.com/okcampus/campus-map-api/internal/repository"
	"github.com/okcampus/campus-map-api/internal/utils"
)

func newEventHandler() *EventHandler {
	return NewEventHandler(
		repository.NewEventRepo(nil),
		repository.NewBookingRepo(nil),
	)
}

func TestEventCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			"missing title",
			`{"start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`,
			"title, start_time, and end_time are required",
		},
		{
			"blank title",
			`{"title":"   ","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`,
			"title, start_time, and end_time are required",
		},
		{
			"missing times",
			`{"title":"Open House"}`,
			"title, start_time, and end_time are required",
		},
		{
			"end before start",
			`{"title":"Open House","start_time":"2025-03-10T10:00:00Z","end_time":"2025-03-10T09:00:00Z"}`,
			"end_time must be after start_time",
		},
		{
			"zero duration",
			`{"title":"Open House","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T09:00:00Z"}`,
			"end_time must be after start_time",
		},
		{
			"unparseable time",
			`{"title":"Open House","start_time":"tomorrow","end_time":"2025-03-10T09:00:00Z"}`,
			"invalid start_time or end_time",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONCtx(http.MethodPost, "/api/events", tc.body)
			if err := newEventHandler().Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := errorBody(t, rec); got != tc.wantErr {
				t.Errorf("error = %q, want %q", got, tc.wantErr)
			}
		})
	}
}

func TestEventEditRequiresID(t *testing.T) {
	body := `{"title":"Open House","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`
	c, rec := newJSONCtx(http.MethodPost, "/api/events/edit", body)
	if err := newEventHandler().Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "id is required" {
		t.Errorf("error = %q", got)
	}
}

func TestEventGetRejectsBadID(t *testing.T) {
	c, rec := newGetCtx("/api/events/zzz", "id", "zzz")
	if err := newEventHandler().Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRFC3339Range(t *testing.T) {
	cases := []struct {
		name               string
		start, end         string
		wantStart, wantEnd string
	}{
		{
			"db layout to rfc3339",
			"2025-03-10 09:00:00", "2025-03-10 10:00:00",
			"2025-03-10T09:00:00Z", "2025-03-10T10:00:00Z",
		},
		{
			"unparseable passes through",
			"not-a-time", "2025-03-10 10:00:00",
			"not-a-time", "2025-03-10 10:00:00",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotStart, gotEnd := rfc3339Range(tc.start, tc.end)
			if gotStart != tc.wantStart || gotEnd != tc.wantEnd {
				t.Errorf("rfc3339Range = (%q, %q), want (%q, %q)", gotStart, gotEnd, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

// A request carrying an offset must come back as UTC, matching what the
// list and get endpoints return for the same event.
func TestRFC3339RangeNormalizesOffsets(t *testing.T) {
	start, end, err := utils.ParseTimeRange("2025-03-10T09:00:00-07:00", "2025-03-10T10:00:00-07:00")
	if err != nil {
		t.Fatalf("ParseTimeRange: %v", err)
	}
	gotStart, gotEnd := rfc3339Range(start, end)
	if gotStart != "2025-03-10T16:00:00Z" {
		t.Errorf("start = %q, want 2025-03-10T16:00:00Z", gotStart)
	}
	if gotEnd != "2025-03-10T17:00:00Z" {
		t.Errorf("end = %q, want 2025-03-10T17:00:00Z", gotEnd)
	}
}
