package models

import "time"

// Role governs which operations an identity may perform.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleFaculty Role = "FACULTY"
	// RoleNone means no role row exists for the identity. It is the
	// unprivileged default, not an error state.
	RoleNone Role = "NONE"
)

// Valid reports whether the role is one of the assignable roles.
// RoleNone is never stored; the absence of a row encodes it.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleFaculty
}

// UserRole maps an identity to its single role row ('user_roles' table).
// At most one row exists per user.
type UserRole struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
