package model

// Washroom is a washroom facility inside a building.
type Washroom struct {
	ID            uint64  `json:"id"`
	BuildingID    uint64  `json:"building_id"`
	RoomNumber    *string `json:"room_number"`
	Description   *string `json:"description"`
	Accessibility *string `json:"accessibility"`
	Gender        *string `json:"gender"`
}

// Business is a shop or service on campus, optionally tied to a building.
type Business struct {
	ID          uint64   `json:"id"`
	BuildingID  *uint64  `json:"building_id"`
	Name        string   `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Hours       *string  `json:"hours"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// ParkingLot is a campus parking area.
type ParkingLot struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// BusStop is a transit stop on or near campus.
type BusStop struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
