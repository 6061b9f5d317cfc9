package models

import (
	"time"
)

// User defines the authentication record based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"admin@edupulse.edu"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Profile defines the identity-linked person record based on the
// 'profiles' table. One profile exists per user.
type Profile struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	FirstName string    `json:"firstName" db:"first_name" example:"Asha"`
	LastName  string    `json:"lastName" db:"last_name" example:"Iyer"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name for the profile
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
