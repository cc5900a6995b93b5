package model

// Room is a bookable room inside a building. RoomNumber is unique within
// its building. Capacity is the seat count used by availability filters.
type Room struct {
	ID         uint64  `json:"id"`
	BuildingID uint64  `json:"building_id"`
	RoomNumber string  `json:"room_number"`
	Capacity   uint32  `json:"capacity"`
	Furniture  *string `json:"furniture"`
	Layout     *string `json:"layout"`
	RoomType   *string `json:"room_type"`
	Notes      *string `json:"notes"`
}

// AvailableRoom is a Room annotated with its building's code and name for
// display, as returned by the availability query.
type AvailableRoom struct {
	Room
	BuildingCode *string `json:"building_code"`
	BuildingName *string `json:"building_name"`
}
