package model

import "time"

// User statuses. Status doubles as the status claim in access tokens and
// drives room-visibility filtering for FACULTY users.
const (
	StatusVisitor          = "VISITOR"
	StatusFaculty          = "FACULTY"
	StatusAdmin            = "ADMIN"
	StatusEventCoordinator = "EVENT_COORDINATOR"
)

// ValidStatus reports whether s is one of the known user statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusVisitor, StatusFaculty, StatusAdmin, StatusEventCoordinator:
		return true
	}
	return false
}

// User mirrors the `users` table. The plain password is never stored, only
// its bcrypt hash.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Name         string    // users.name
	Status       string    // users.status
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Each refresh
// token belongs to a user; only the SHA-256 hash of the raw token is kept.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
