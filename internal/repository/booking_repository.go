package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/okcampus/campus-map-api/internal/utils"
)

// BookingRepo provides CRUD operations for room bookings. A booking
// reserves one room for one event over a half-open interval
// [start_time, end_time). The no-overlap invariant for a room is enforced
// by running LockRoomTx + HasConflictTx + CreateTx inside one transaction:
// the FOR UPDATE lock on the room row serializes concurrent booking
// attempts for the same room so two requests cannot both pass the check.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingRecord mirrors the room_bookings table.
type BookingRecord struct {
	ID        uint64
	RoomID    uint64
	EventID   uint64
	StartTime time.Time
	EndTime   time.Time
}

// LockRoomTx locks the room row for the remainder of the transaction.
// Returns ErrRoomNotFound when the room does not exist. Every booking
// write for a room must take this lock before its conflict check.
func (r *BookingRepo) LockRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) error {
	const q = `SELECT id FROM rooms WHERE id = ? FOR UPDATE`
	var id uint64
	err := tx.QueryRowContext(ctx, q, roomID).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrRoomNotFound
	}
	return err
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. It is the Go form of the SQL
// condition `NOT (end_time <= ? OR start_time >= ?)` used by
// HasConflictTx and the availability queries: intervals that merely
// touch, like [10:00,11:00) and [11:00,12:00), do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflictTx reports whether any booking on the room overlaps
// [start, end) in the Overlaps sense. Bookings belonging to
// excludeEventID are ignored, which lets an event be rescheduled over
// its own booking; pass 0 to exclude nothing. Times must be in
// utils.DBTimeLayout.
func (r *BookingRepo) HasConflictTx(ctx context.Context, tx *sql.Tx, roomID uint64, start, end string, excludeEventID uint64) (bool, error) {
	const q = `SELECT 1 FROM room_bookings
	           WHERE room_id = ?
	             AND event_id <> ?
	             AND NOT (end_time <= ? OR start_time >= ?)
	           LIMIT 1`
	var one int
	err := tx.QueryRowContext(ctx, q, roomID, excludeEventID, start, end).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTx inserts a booking row and returns its generated ID. The caller
// must already hold the room lock and have verified there is no conflict.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, roomID, eventID uint64, start, end string) (uint64, error) {
	const q = `INSERT INTO room_bookings (room_id, event_id, start_time, end_time) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, roomID, eventID, start, end)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// CurrentForEventTx returns the event's current booking. The latest row by
// id is treated as authoritative. It returns nil without error when the
// event has no booking.
func (r *BookingRepo) CurrentForEventTx(ctx context.Context, tx *sql.Tx, eventID uint64) (*BookingRecord, error) {
	const q = `SELECT id, room_id, event_id, start_time, end_time
	           FROM room_bookings WHERE event_id = ?
	           ORDER BY id DESC LIMIT 1`
	var b BookingRecord
	err := tx.QueryRowContext(ctx, q, eventID).Scan(&b.ID, &b.RoomID, &b.EventID, &b.StartTime, &b.EndTime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteByEventTx removes all bookings for the event and returns how many
// rows were deleted.
func (r *BookingRepo) DeleteByEventTx(ctx context.Context, tx *sql.Tx, eventID uint64) (int64, error) {
	const q = `DELETE FROM room_bookings WHERE event_id = ?`
	res, err := tx.ExecContext(ctx, q, eventID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// BookingChanged reports whether the requested room/interval differs from
// the event's current booking. A nil current booking always counts as
// changed. Start and end must be in utils.DBTimeLayout; the stored times
// are normalized to the same layout before comparison, so an edit that
// keeps room and times identical leaves the booking row untouched.
func BookingChanged(cur *BookingRecord, roomID uint64, start, end string) bool {
	if cur == nil {
		return true
	}
	return cur.RoomID != roomID ||
		cur.StartTime.UTC().Format(utils.DBTimeLayout) != start ||
		cur.EndTime.UTC().Format(utils.DBTimeLayout) != end
}
