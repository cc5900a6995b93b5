package repository

import (
	"context"
	"database/sql"

	"github.com/okcampus/campus-map-api/internal/model"
)

// ParkingRepo manages persistence for parking lots.
type ParkingRepo struct {
	db *sql.DB
}

// NewParkingRepo constructs a ParkingRepo with the given DB handle.
func NewParkingRepo(db *sql.DB) *ParkingRepo { return &ParkingRepo{db: db} }

// List returns all parking lots ordered by name.
func (r *ParkingRepo) List(ctx context.Context) ([]model.ParkingLot, error) {
	const q = `SELECT id, name, description, latitude, longitude FROM parking_lots ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ParkingLot, 0)
	for rows.Next() {
		var p model.ParkingLot
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Latitude, &p.Longitude); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID returns one parking lot; sql.ErrNoRows when the id is unknown.
func (r *ParkingRepo) GetByID(ctx context.Context, id uint64) (*model.ParkingLot, error) {
	const q = `SELECT id, name, description, latitude, longitude FROM parking_lots WHERE id = ?`
	var p model.ParkingLot
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Latitude, &p.Longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
