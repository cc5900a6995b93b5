package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/model"
	"github.com/okcampus/campus-map-api/internal/queue"
	"github.com/okcampus/campus-map-api/internal/repository"
	queue_publisher "github.com/okcampus/campus-map-api/internal/service"
	"github.com/okcampus/campus-map-api/internal/utils"
)

// EventHandler groups the repositories required to create, edit and list
// events and their room bookings. Event-plus-booking writes run inside a
// single transaction: the room row is locked before the conflict check so
// two concurrent requests for the same room cannot both pass it.
type EventHandler struct {
	Events   *repository.EventRepo
	Bookings *repository.BookingRepo
}

// NewEventHandler constructs an EventHandler. Both dependencies must be
// non-nil.
func NewEventHandler(events *repository.EventRepo, bookings *repository.BookingRepo) *EventHandler {
	if events == nil || bookings == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Bookings: bookings}
}

type eventReq struct {
	ID          uint64   `json:"id"` // used by edit only
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	BuildingID  *uint64  `json:"building_id"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	CreatedBy   *uint64  `json:"created_by"`
	RoomID      *uint64  `json:"room_id"`
}

// validate checks the shared create/edit constraints and returns the
// interval in DB layout.
func (req *eventReq) validate() (start, end string, err error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", "", errors.New("title, start_time, and end_time are required")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return "", "", errors.New("title, start_time, and end_time are required")
	}
	start, end, err = utils.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidRange) {
			return "", "", errors.New("end_time must be after start_time")
		}
		return "", "", errors.New("invalid start_time or end_time")
	}
	return start, end, nil
}

// Create handles POST /api/events. The event row and, when room_id is
// present, its booking are inserted in one transaction; a booking conflict
// rolls the whole request back so no orphan event row is left behind.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, end, err := req.validate()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	tx, err := h.Events.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if req.CreatedBy == nil {
		if uid, uidErr := getUserID(c); uidErr == nil {
			req.CreatedBy = &uid
		}
	}
	rec := repository.EventRecord{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		BuildingID:  req.BuildingID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CreatedBy:   req.CreatedBy,
	}
	if err := h.Events.CreateTx(ctx, tx, &rec, start, end); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create event"})
	}

	var booking *model.EventBooking
	if req.RoomID != nil {
		b, err := h.bookRoomTx(ctx, tx, *req.RoomID, rec.ID, start, end)
		if err != nil {
			return bookingError(c, err)
		}
		booking = b
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	if booking != nil {
		h.publishBooked(rec, booking)
	}

	respStart, respEnd := rfc3339Range(start, end)
	resp := model.Event{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		BuildingID:  rec.BuildingID,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		StartTime:   respStart,
		EndTime:     respEnd,
		CreatedBy:   rec.CreatedBy,
		Booking:     booking,
	}
	return c.JSON(http.StatusCreated, resp)
}

// Edit handles POST /api/events/edit. Event fields are rewritten; the
// booking row is only touched when the effective room or interval actually
// changed. Passing a null room_id clears any existing booking.
func (h *EventHandler) Edit(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	}
	start, end, err := req.validate()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	tx, err := h.Events.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	rec := repository.EventRecord{
		ID:          req.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		BuildingID:  req.BuildingID,
	}
	if err := h.Events.UpdateTx(ctx, tx, &rec, start, end); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update event"})
	}

	current, err := h.Bookings.CurrentForEventTx(ctx, tx, req.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}

	var booking *model.EventBooking
	switch {
	case req.RoomID == nil:
		// Room cleared: drop any existing booking, create nothing.
		if current != nil {
			if _, err := h.Bookings.DeleteByEventTx(ctx, tx, req.ID); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to clear booking"})
			}
		}
	case repository.BookingChanged(current, *req.RoomID, start, end):
		if _, err := h.Bookings.DeleteByEventTx(ctx, tx, req.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to replace booking"})
		}
		b, err := h.bookRoomTx(ctx, tx, *req.RoomID, req.ID, start, end)
		if err != nil {
			return bookingError(c, err)
		}
		booking = b
	default:
		// Same room and interval: leave the booking row untouched.
		booking = &model.EventBooking{
			BookingID: current.ID,
			RoomID:    current.RoomID,
			StartTime: current.StartTime.UTC().Format(time.RFC3339),
			EndTime:   current.EndTime.UTC().Format(time.RFC3339),
		}
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	respStart, respEnd := rfc3339Range(start, end)
	resp := model.Event{
		ID:          req.ID,
		Title:       rec.Title,
		Description: rec.Description,
		BuildingID:  rec.BuildingID,
		StartTime:   respStart,
		EndTime:     respEnd,
		Booking:     booking,
	}
	return c.JSON(http.StatusCreated, resp)
}

// bookRoomTx locks the room, verifies there is no overlapping booking for
// any other event and inserts the booking row, all within the caller's
// transaction. The returned booking carries the room's display fields for
// the response body.
func (h *EventHandler) bookRoomTx(ctx context.Context, tx *sql.Tx, roomID, eventID uint64, start, end string) (*model.EventBooking, error) {
	if err := h.Bookings.LockRoomTx(ctx, tx, roomID); err != nil {
		return nil, err
	}
	conflict, err := h.Bookings.HasConflictTx(ctx, tx, roomID, start, end, eventID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, repository.ErrRoomConflict
	}
	bookingID, err := h.Bookings.CreateTx(ctx, tx, roomID, eventID, start, end)
	if err != nil {
		return nil, err
	}

	b := &model.EventBooking{BookingID: bookingID, RoomID: roomID}
	const q = `SELECT r.room_number, r.capacity, b.code, b.name
	           FROM rooms r LEFT JOIN buildings b ON b.id = r.building_id
	           WHERE r.id = ?`
	var (
		roomNumber string
		capacity   uint32
	)
	if err := tx.QueryRowContext(ctx, q, roomID).Scan(&roomNumber, &capacity, &b.BuildingCode, &b.BuildingName); err != nil {
		return nil, err
	}
	b.RoomNumber = &roomNumber
	b.Capacity = &capacity

	b.StartTime, b.EndTime = rfc3339Range(start, end)
	return b, nil
}

// rfc3339Range converts an interval from utils.DBTimeLayout to UTC
// RFC3339 so write responses carry the same time format as reads,
// whatever offset the request used. Inputs that fail to parse are
// returned as-is.
func rfc3339Range(start, end string) (string, string) {
	st, errS := time.Parse(utils.DBTimeLayout, start)
	et, errE := time.Parse(utils.DBTimeLayout, end)
	if errS != nil || errE != nil {
		return start, end
	}
	return st.UTC().Format(time.RFC3339), et.UTC().Format(time.RFC3339)
}

// bookingError maps booking failures onto HTTP responses.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case errors.Is(err, repository.ErrRoomConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for the selected time range"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create room booking"})
	}
}

// List handles GET /api/events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.Events.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /api/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ev, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch event"})
	}
	return c.JSON(http.StatusOK, ev)
}

// ListByBuilding handles GET /api/events/building/:buildingId.
func (h *EventHandler) ListByBuilding(c echo.Context) error {
	buildingID, ok := pathID(c, "buildingId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid building id"})
	}
	events, err := h.Events.ListByBuilding(c.Request().Context(), buildingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

// publishBooked emits a room.booked message after the transaction has
// committed. Publishing is best effort and never affects the response.
func (h *EventHandler) publishBooked(rec repository.EventRecord, b *model.EventBooking) {
	ev := queue.RoomBookedEvent{
		BookingID:  b.BookingID,
		EventID:    rec.ID,
		EventTitle: rec.Title,
		RoomID:     b.RoomID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		CreatedBy:  rec.CreatedBy,
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if b.RoomNumber != nil {
		ev.RoomNumber = *b.RoomNumber
	}
	if b.BuildingCode != nil {
		ev.BuildingCode = *b.BuildingCode
	}
	if b.BuildingName != nil {
		ev.BuildingName = *b.BuildingName
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishRoomBooked(ctx, ev)
	}()
}
