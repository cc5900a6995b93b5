package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/okcampus/campus-map-api/internal/model"
	"github.com/okcampus/campus-map-api/internal/utils"
)

// UserRepo gives access to the users and user_building_access tables.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID. The email is normalized to
// lower case; the password is bcrypt-hashed with the given cost.
func (r *UserRepo) Create(ctx context.Context, email, password, name, status string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, name, status) VALUES (?,?,?,?)",
		email, hash, name, status)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,status,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,status,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GrantBuildingAccess records that the user may see the building's rooms
// in faculty availability queries. Granting twice is a no-op.
func (r *UserRepo) GrantBuildingAccess(ctx context.Context, userID, buildingID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO user_building_access (user_id, building_id) VALUES (?,?)",
		userID, buildingID)
	return err
}

// RevokeBuildingAccess removes a building grant.
func (r *UserRepo) RevokeBuildingAccess(ctx context.Context, userID, buildingID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_building_access WHERE user_id=? AND building_id=?",
		userID, buildingID)
	return err
}

// AccessibleBuildings lists the ids of buildings granted to the user.
func (r *UserRepo) AccessibleBuildings(ctx context.Context, userID uint64) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT building_id FROM user_building_access WHERE user_id=? ORDER BY building_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
