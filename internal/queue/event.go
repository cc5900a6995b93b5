// Package queue defines message payloads exchanged over the message broker.
package queue

// RoomBookedEvent is published when a room booking is committed. It
// carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type RoomBookedEvent struct {
	BookingID    uint64  `json:"booking_id"`
	EventID      uint64  `json:"event_id"`
	EventTitle   string  `json:"event_title"`
	RoomID       uint64  `json:"room_id"`
	RoomNumber   string  `json:"room_number,omitempty"`
	BuildingCode string  `json:"building_code,omitempty"`
	BuildingName string  `json:"building_name,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	CreatedBy    *uint64 `json:"created_by,omitempty"`
	BookedAt     string  `json:"booked_at"`
}
