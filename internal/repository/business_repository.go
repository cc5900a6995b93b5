package repository

import (
	"context"
	"database/sql"

	"github.com/okcampus/campus-map-api/internal/model"
)

// BusinessRepo manages persistence for on-campus businesses.
type BusinessRepo struct {
	db *sql.DB
}

// NewBusinessRepo constructs a BusinessRepo with the given DB handle.
func NewBusinessRepo(db *sql.DB) *BusinessRepo { return &BusinessRepo{db: db} }

// List returns all businesses, optionally restricted to one building.
func (r *BusinessRepo) List(ctx context.Context, buildingID *uint64) ([]model.Business, error) {
	q := `SELECT id, building_id, name, category, description, hours, latitude, longitude FROM businesses`
	args := []any{}
	if buildingID != nil {
		q += ` WHERE building_id = ?`
		args = append(args, *buildingID)
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Business, 0)
	for rows.Next() {
		var b model.Business
		if err := rows.Scan(&b.ID, &b.BuildingID, &b.Name, &b.Category, &b.Description, &b.Hours, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns one business; sql.ErrNoRows when the id is unknown.
func (r *BusinessRepo) GetByID(ctx context.Context, id uint64) (*model.Business, error) {
	const q = `SELECT id, building_id, name, category, description, hours, latitude, longitude FROM businesses WHERE id = ?`
	var b model.Business
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.BuildingID, &b.Name, &b.Category, &b.Description, &b.Hours, &b.Latitude, &b.Longitude)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
