package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
	"github.com/okcampus/campus-map-api/internal/utils"
)

// RoomHandler serves room browsing and the availability engine endpoints.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// List handles GET /api/rooms[?buildingId=].
func (h *RoomHandler) List(c echo.Context) error {
	buildingID, ok := buildingFilter(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid buildingId"})
	}
	items, err := h.Rooms.List(c.Request().Context(), buildingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch rooms"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch room"})
	}
	return c.JSON(http.StatusOK, room)
}

// FindAvailable handles
// GET /api/rooms/available?start=&end=[&building_id=][&min_capacity=][&isFaculty=&userId=].
// Both start and end are required RFC3339 timestamps describing the
// half-open interval [start, end); a room is returned when no booking
// overlaps that interval. When isFaculty=true the result is limited to
// buildings the given user has been granted access to.
func (h *RoomHandler) FindAvailable(c echo.Context) error {
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")
	if startParam == "" || endParam == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start and end are required query params (ISO 8601)"})
	}
	start, end, err := utils.ParseTimeRange(startParam, endParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time range"})
	}

	var filter repository.AvailabilityFilter
	if raw := c.QueryParam("building_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid building_id"})
		}
		filter.BuildingID = &id
	}
	if raw := c.QueryParam("min_capacity"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_capacity"})
		}
		cap32 := uint32(n)
		filter.MinCapacity = &cap32
	}
	if faculty, _ := strconv.ParseBool(c.QueryParam("isFaculty")); faculty {
		userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 64)
		if err != nil || userID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required when isFaculty is set"})
		}
		filter.FacultyUserID = &userID
	}

	rooms, err := h.Rooms.FindAvailable(c.Request().Context(), start, end, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search available rooms"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// CheckAvailability handles GET /api/rooms/:id/availability?start=&end=.
// The response lists every conflicting booking (with its event title) and
// an aggregate available flag; a booking that merely touches the requested
// boundary is not a conflict.
func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	roomID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")
	if startParam == "" || endParam == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start and end are required query params (ISO 8601)"})
	}
	start, end, err := utils.ParseTimeRange(startParam, endParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time range"})
	}

	conflicts, err := h.Rooms.CheckAvailability(c.Request().Context(), roomID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check room availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":   roomID,
		"available": len(conflicts) == 0,
		"conflicts": conflicts,
	})
}
