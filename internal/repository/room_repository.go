package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/okcampus/campus-map-api/internal/model"
)

// RoomRepo manages persistence for rooms and answers availability queries.
// All time arguments must already be in utils.DBTimeLayout (UTC); handlers
// validate and convert RFC3339 input before calling in.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// AvailabilityFilter narrows the room set considered by FindAvailable.
// Nil fields are ignored. When FacultyUserID is set, only rooms in
// buildings granted to that user via user_building_access are returned.
type AvailabilityFilter struct {
	BuildingID    *uint64
	MinCapacity   *uint32
	FacultyUserID *uint64
}

// List returns all rooms, optionally restricted to one building when
// buildingID is non-nil.
func (r *RoomRepo) List(ctx context.Context, buildingID *uint64) ([]model.Room, error) {
	q := `SELECT id, building_id, room_number, capacity, furniture, layout, room_type, notes FROM rooms`
	args := []any{}
	if buildingID != nil {
		q += ` WHERE building_id = ?`
		args = append(args, *buildingID)
	}
	q += ` ORDER BY building_id ASC, room_number ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var m model.Room
		if err := rows.Scan(&m.ID, &m.BuildingID, &m.RoomNumber, &m.Capacity, &m.Furniture, &m.Layout, &m.RoomType, &m.Notes); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByID returns one room. ErrRoomNotFound is returned when no row
// matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, building_id, room_number, capacity, furniture, layout, room_type, notes FROM rooms WHERE id = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.BuildingID, &m.RoomNumber, &m.Capacity, &m.Furniture, &m.Layout, &m.RoomType, &m.Notes)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAvailable returns every room matching the filter that has no booking
// overlapping the half-open interval [start, end). A booking overlaps when
// NOT (booking.end <= start OR booking.start >= end); intervals that only
// touch at a boundary do not conflict. Building code and name are attached
// to each row for display.
func (r *RoomRepo) FindAvailable(ctx context.Context, start, end string, f AvailabilityFilter) ([]model.AvailableRoom, error) {
	var (
		where []string
		args  []any
	)

	join := `LEFT JOIN buildings b ON b.id = r.building_id`
	if f.FacultyUserID != nil {
		// Faculty only see rooms in buildings they were granted access to.
		join = `JOIN buildings b ON b.id = r.building_id
		        JOIN user_building_access u ON u.building_id = r.building_id AND u.user_id = ?`
		args = append(args, *f.FacultyUserID)
	}
	if f.BuildingID != nil {
		where = append(where, "r.building_id = ?")
		args = append(args, *f.BuildingID)
	}
	if f.MinCapacity != nil {
		where = append(where, "r.capacity >= ?")
		args = append(args, *f.MinCapacity)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	q := `SELECT r.id, r.building_id, r.room_number, r.capacity, r.furniture, r.layout, r.room_type, r.notes,
	             b.code AS building_code, b.name AS building_name
	      FROM rooms r
	      ` + join + `
	      WHERE ` + cond + `
	        AND NOT EXISTS (
	          SELECT 1 FROM room_bookings rb
	          WHERE rb.room_id = r.id
	            AND NOT (rb.end_time <= ? OR rb.start_time >= ?)
	        )
	      ORDER BY b.name ASC, r.room_number ASC`
	args = append(args, start, end)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.AvailableRoom, 0)
	for rows.Next() {
		var m model.AvailableRoom
		if err := rows.Scan(&m.ID, &m.BuildingID, &m.RoomNumber, &m.Capacity, &m.Furniture, &m.Layout, &m.RoomType, &m.Notes,
			&m.BuildingCode, &m.BuildingName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CheckAvailability returns all bookings on the room that overlap
// [start, end), each annotated with its event's title when the event still
// exists. The room is available iff the returned slice is empty.
func (r *RoomRepo) CheckAvailability(ctx context.Context, roomID uint64, start, end string) ([]model.BookingConflict, error) {
	const q = `SELECT rb.id, rb.room_id, rb.event_id, rb.start_time, rb.end_time, e.title AS event_title
	           FROM room_bookings rb
	           LEFT JOIN events e ON e.id = rb.event_id
	           WHERE rb.room_id = ?
	             AND NOT (rb.end_time <= ? OR rb.start_time >= ?)
	           ORDER BY rb.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, roomID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BookingConflict, 0)
	for rows.Next() {
		var (
			c      model.BookingConflict
			st, et time.Time
		)
		if err := rows.Scan(&c.ID, &c.RoomID, &c.EventID, &st, &et, &c.EventTitle); err != nil {
			return nil, err
		}
		c.StartTime = st.UTC().Format(time.RFC3339)
		c.EndTime = et.UTC().Format(time.RFC3339)
		out = append(out, c)
	}
	return out, rows.Err()
}
