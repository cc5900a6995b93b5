package repository

import (
	"context"
	"database/sql"

	"github.com/okcampus/campus-map-api/internal/model"
)

// BuildingRepo manages persistence for campus buildings.
type BuildingRepo struct {
	db *sql.DB
}

// NewBuildingRepo constructs a BuildingRepo with the given DB handle.
func NewBuildingRepo(db *sql.DB) *BuildingRepo { return &BuildingRepo{db: db} }

// List returns all buildings ordered by name.
func (r *BuildingRepo) List(ctx context.Context) ([]model.Building, error) {
	const q = `SELECT id, code, name, description, latitude, longitude FROM buildings ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Building, 0)
	for rows.Next() {
		var b model.Building
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Description, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns one building. sql.ErrNoRows is returned when the id is
// unknown.
func (r *BuildingRepo) GetByID(ctx context.Context, id uint64) (*model.Building, error) {
	const q = `SELECT id, code, name, description, latitude, longitude FROM buildings WHERE id = ?`
	var b model.Building
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Code, &b.Name, &b.Description, &b.Latitude, &b.Longitude)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
