package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/okcampus/campus-map-api/internal/model"
)

// EventRepo manages persistence for campus events and assembles event
// responses with their embedded booking sub-object.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying sql.DB for transactions spanning repositories.
func (r *EventRepo) DB() *sql.DB { return r.db }

// EventRecord mirrors the events table. Optional columns are pointers so
// NULLs round-trip cleanly.
type EventRecord struct {
	ID          uint64
	Title       string
	Description *string
	BuildingID  *uint64
	Latitude    *float64
	Longitude   *float64
	CreatedBy   *uint64
}

// CreateTx inserts a new event within the scope of an existing transaction
// and populates the generated ID on the record. Times must be in
// utils.DBTimeLayout. The caller must commit or roll back the transaction.
func (r *EventRepo) CreateTx(ctx context.Context, tx *sql.Tx, e *EventRecord, start, end string) error {
	const q = `INSERT INTO events (title, description, building_id, latitude, longitude, start_time, end_time, created_by)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, e.Title, e.Description, e.BuildingID, e.Latitude, e.Longitude, start, end, e.CreatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// UpdateTx rewrites the event's editable fields. ErrEventNotFound is
// returned when the id does not exist; the existence probe is separate
// from the UPDATE because MySQL reports zero affected rows for no-op
// updates too.
func (r *EventRepo) UpdateTx(ctx context.Context, tx *sql.Tx, e *EventRecord, start, end string) error {
	var id uint64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = ?`, e.ID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return ErrEventNotFound
		}
		return err
	}
	const q = `UPDATE events SET title = ?, description = ?, building_id = ?, start_time = ?, end_time = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, e.Title, e.Description, e.BuildingID, start, end, e.ID)
	return err
}

// GetByID returns one event with building display fields and its current
// booking. ErrEventNotFound is returned when the id is unknown.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT e.id, e.title, e.description, e.building_id, e.latitude, e.longitude,
	                  e.start_time, e.end_time, e.created_by, b.code, b.name
	           FROM events e
	           LEFT JOIN buildings b ON b.id = e.building_id
	           WHERE e.id = ?`
	var (
		ev     model.Event
		st, et time.Time
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.BuildingID, &ev.Latitude, &ev.Longitude,
		&st, &et, &ev.CreatedBy, &ev.BuildingCode, &ev.BuildingName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	ev.StartTime = st.UTC().Format(time.RFC3339)
	ev.EndTime = et.UTC().Format(time.RFC3339)
	bookings, err := r.latestBookings(ctx, []uint64{ev.ID})
	if err != nil {
		return nil, err
	}
	ev.Booking = bookings[ev.ID]
	return &ev, nil
}

// List returns all events ordered newest first, each with its current
// booking attached.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT e.id, e.title, e.description, e.building_id, e.latitude, e.longitude,
	                  e.start_time, e.end_time, e.created_by, b.code, b.name
	           FROM events e
	           LEFT JOIN buildings b ON b.id = e.building_id
	           ORDER BY e.start_time DESC, e.id DESC`
	return r.listEvents(ctx, q)
}

// ListByBuilding returns events whose current booking is in a room of the
// given building.
func (r *EventRepo) ListByBuilding(ctx context.Context, buildingID uint64) ([]model.Event, error) {
	const q = `SELECT DISTINCT e.id, e.title, e.description, e.building_id, e.latitude, e.longitude,
	                  e.start_time, e.end_time, e.created_by, b.code, b.name
	           FROM events e
	           JOIN room_bookings rb ON rb.event_id = e.id
	           JOIN rooms rm ON rm.id = rb.room_id
	           LEFT JOIN buildings b ON b.id = e.building_id
	           WHERE rm.building_id = ?
	           ORDER BY e.start_time DESC, e.id DESC`
	return r.listEvents(ctx, q, buildingID)
}

func (r *EventRepo) listEvents(ctx context.Context, q string, args ...any) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var (
			ev     model.Event
			st, et time.Time
		)
		if err := rows.Scan(
			&ev.ID, &ev.Title, &ev.Description, &ev.BuildingID, &ev.Latitude, &ev.Longitude,
			&st, &et, &ev.CreatedBy, &ev.BuildingCode, &ev.BuildingName,
		); err != nil {
			return nil, err
		}
		ev.StartTime = st.UTC().Format(time.RFC3339)
		ev.EndTime = et.UTC().Format(time.RFC3339)
		index[ev.ID] = len(events)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	ids := make([]uint64, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	bookings, err := r.latestBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, b := range bookings {
		events[index[id]].Booking = b
	}
	return events, nil
}

// latestBookings fetches the newest booking per event in one query.
// Rows are ordered by booking id ascending so the final write per event
// wins, matching the "latest row is authoritative" rule used elsewhere.
func (r *EventRepo) latestBookings(ctx context.Context, eventIDs []uint64) (map[uint64]*model.EventBooking, error) {
	if len(eventIDs) == 0 {
		return map[uint64]*model.EventBooking{}, nil
	}
	placeholders := make([]string, len(eventIDs))
	args := make([]any, len(eventIDs))
	for i, id := range eventIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	q := `SELECT rb.event_id, rb.id, rb.room_id, rb.start_time, rb.end_time,
	             rm.room_number, rm.capacity, b.code, b.name
	      FROM room_bookings rb
	      LEFT JOIN rooms rm ON rm.id = rb.room_id
	      LEFT JOIN buildings b ON b.id = rm.building_id
	      WHERE rb.event_id IN (` + strings.Join(placeholders, ",") + `)
	      ORDER BY rb.id ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64]*model.EventBooking)
	for rows.Next() {
		var (
			eventID uint64
			bk      model.EventBooking
			st, et  time.Time
		)
		if err := rows.Scan(&eventID, &bk.BookingID, &bk.RoomID, &st, &et,
			&bk.RoomNumber, &bk.Capacity, &bk.BuildingCode, &bk.BuildingName); err != nil {
			return nil, err
		}
		bk.StartTime = st.UTC().Format(time.RFC3339)
		bk.EndTime = et.UTC().Format(time.RFC3339)
		b := bk
		out[eventID] = &b
	}
	return out, rows.Err()
}
