package dto

import "github.com/edupulse/edupulse/internal/app/models"

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"asha.iyer@edupulse.edu"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// LoginRequest is the sign-in payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest rotates a token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string      `json:"accessToken"`
	RefreshToken     string      `json:"refreshToken"`
	ExpiresIn        int         `json:"expiresIn"`
	RefreshExpiresIn int         `json:"refreshExpiresIn"`
	Role             models.Role `json:"role"`
}

// IdentityResponse is the resolved identity triple for the signed-in
// principal: role tag, profile, and the faculty profile when the role
// is faculty. Also carries the fixed menu for the role.
type IdentityResponse struct {
	Role           models.Role            `json:"role"`
	Profile        *models.Profile        `json:"profile"`
	FacultyProfile *models.FacultyProfile `json:"facultyProfile,omitempty"`
	Menu           []models.MenuItem      `json:"menu"`
}

// UpdateProfileRequest updates the caller's own profile
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
}
