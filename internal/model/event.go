package model

// Event is a scheduled campus event. StartTime and EndTime are RFC3339 UTC
// strings on the wire; the repository layer converts to and from the
// DATETIME format stored in the database.
type Event struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	BuildingID   *uint64  `json:"building_id"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	CreatedBy    *uint64  `json:"created_by"`
	BuildingCode *string  `json:"building_code,omitempty"`
	BuildingName *string  `json:"building_name,omitempty"`

	// Booking is the event's current room booking, nil when the event has
	// no room reserved.
	Booking *EventBooking `json:"booking"`
}

// EventBooking is the booking sub-object embedded in event responses.
type EventBooking struct {
	BookingID    uint64  `json:"booking_id"`
	RoomID       uint64  `json:"room_id"`
	RoomNumber   *string `json:"room_number,omitempty"`
	Capacity     *uint32 `json:"capacity,omitempty"`
	BuildingCode *string `json:"building_code,omitempty"`
	BuildingName *string `json:"building_name,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

// BookingConflict is one existing booking that overlaps a requested
// interval, annotated with its event's title when the event still exists.
type BookingConflict struct {
	ID         uint64  `json:"id"`
	RoomID     uint64  `json:"room_id"`
	EventID    uint64  `json:"event_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	EventTitle *string `json:"event_title"`
}
