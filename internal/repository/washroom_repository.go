package repository

import (
	"context"
	"database/sql"

	"github.com/okcampus/campus-map-api/internal/model"
)

// WashroomRepo manages persistence for washroom facilities.
type WashroomRepo struct {
	db *sql.DB
}

// NewWashroomRepo constructs a WashroomRepo with the given DB handle.
func NewWashroomRepo(db *sql.DB) *WashroomRepo { return &WashroomRepo{db: db} }

// List returns all washrooms, optionally restricted to one building.
func (r *WashroomRepo) List(ctx context.Context, buildingID *uint64) ([]model.Washroom, error) {
	q := `SELECT id, building_id, room_number, description, accessibility, gender FROM washrooms`
	args := []any{}
	if buildingID != nil {
		q += ` WHERE building_id = ?`
		args = append(args, *buildingID)
	}
	q += ` ORDER BY building_id ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Washroom, 0)
	for rows.Next() {
		var w model.Washroom
		if err := rows.Scan(&w.ID, &w.BuildingID, &w.RoomNumber, &w.Description, &w.Accessibility, &w.Gender); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// GetByID returns one washroom; sql.ErrNoRows when the id is unknown.
func (r *WashroomRepo) GetByID(ctx context.Context, id uint64) (*model.Washroom, error) {
	const q = `SELECT id, building_id, room_number, description, accessibility, gender FROM washrooms WHERE id = ?`
	var w model.Washroom
	err := r.db.QueryRowContext(ctx, q, id).Scan(&w.ID, &w.BuildingID, &w.RoomNumber, &w.Description, &w.Accessibility, &w.Gender)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
