package queue

import (
	"strings"
	"testing"
)

func TestFormatBookingLine(t *testing.T) {
	creator := uint64(12)
	ev := RoomBookedEvent{
		BookingID:    5,
		EventID:      9,
		EventTitle:   "Robotics Demo",
		RoomID:       3,
		RoomNumber:   "SCI 114",
		BuildingCode: "SCI",
		BuildingName: "Science Building",
		StartTime:    "2025-03-10T09:00:00Z",
		EndTime:      "2025-03-10T10:00:00Z",
		CreatedBy:    &creator,
		BookedAt:     "2025-03-09T18:00:00Z",
	}
	line := FormatBookingLine(ev)
	if !strings.HasSuffix(line, "\n") {
		t.Error("line is not newline terminated")
	}
	for _, want := range []string{
		"booking_id=5",
		"event_id=9",
		`event="Robotics Demo"`,
		"room_id=3",
		`room="SCI 114"`,
		`building="Science Building"`,
		"start=2025-03-10T09:00:00Z",
		"end=2025-03-10T10:00:00Z",
		"created_by=12",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line missing %q: %s", want, line)
		}
	}
}

func TestFormatBookingLineAnonymousCreator(t *testing.T) {
	line := FormatBookingLine(RoomBookedEvent{BookingID: 1})
	if !strings.Contains(line, "created_by=-") {
		t.Errorf("expected created_by=- for nil creator: %s", line)
	}
}
