package repository

import (
	"context"
	"database/sql"

	"github.com/okcampus/campus-map-api/internal/model"
)

// BusStopRepo manages persistence for campus bus stops.
type BusStopRepo struct {
	db *sql.DB
}

// NewBusStopRepo constructs a BusStopRepo with the given DB handle.
func NewBusStopRepo(db *sql.DB) *BusStopRepo { return &BusStopRepo{db: db} }

// List returns all bus stops ordered by name.
func (r *BusStopRepo) List(ctx context.Context) ([]model.BusStop, error) {
	const q = `SELECT id, name, description, latitude, longitude FROM bus_stops ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BusStop, 0)
	for rows.Next() {
		var s model.BusStop
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID returns one bus stop; sql.ErrNoRows when the id is unknown.
func (r *BusStopRepo) GetByID(ctx context.Context, id uint64) (*model.BusStop, error) {
	const q = `SELECT id, name, description, latitude, longitude FROM bus_stops WHERE id = ?`
	var s model.BusStop
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description, &s.Latitude, &s.Longitude)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
