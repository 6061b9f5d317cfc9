package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/auth"
	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/pkg/validation"
)

// UserStore is the persistence surface the auth service needs for
// users, profiles, and role assignments
type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	GetRole(ctx context.Context, userID int64) (models.Role, error)
}

// TokenStore is the persistence surface for refresh tokens
type TokenStore interface {
	Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*repositories.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// FacultyResolver resolves the faculty profile linked to a user
type FacultyResolver interface {
	GetByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
}

// AuthService handles registration, sign-in, token rotation, and
// identity resolution
type AuthService struct {
	users      UserStore
	tokens     TokenStore
	faculty    FacultyResolver
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens TokenStore, faculty FacultyResolver, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		faculty:    faculty,
		jwtService: jwtService,
	}
}

func validateRegisterRequest(req *dto.RegisterRequest) error {
	fieldErrs := apperrors.FieldErrors{}

	if !validation.ValidEmail(req.Email) {
		fieldErrs["email"] = "a valid email address is required"
	}

	if !validation.ValidPassword(req.Password) {
		fieldErrs["password"] = fmt.Sprintf("password must be at least %d characters",
			validation.PasswordMinLength)
	}

	if !validation.ValidName(req.FirstName) {
		fieldErrs["firstName"] = "first name is required"
	}

	if !validation.ValidName(req.LastName) {
		fieldErrs["lastName"] = "last name is required"
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	return nil
}

// Register creates a new user with a linked profile. New registrations
// carry no role until an administrator assigns one; they can still
// sign in and submit feedback.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	profile := &models.Profile{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     phone,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Info().Str("email", email).Msg("User registered")

	return profile, nil
}

// issueTokens generates and stores a token pair for the user
func (s *AuthService) issueTokens(ctx context.Context, user *models.User, role models.Role) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user, role)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		Role:             role,
	}, nil
}

// Login authenticates a user and issues a token pair. Lookup failures
// and password mismatches collapse into the same credential error so
// the response does not leak which emails exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.users.GetRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user, role)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to stamp last login")
	}

	logger.Info().Str("email", email).Str("role", string(role)).Msg("User signed in")

	return tokens, nil
}

// Refresh rotates a refresh token: the presented token is revoked and
// a fresh pair is issued with the user's current role.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	role, err := s.users.GetRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user, role)
}

// Logout revokes every refresh token held by the user
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAllForUser(ctx, userID)
}

// ResolveIdentity assembles the identity view for a signed-in user:
// role, profile, the faculty profile when one exists, and the menu the
// role unlocks.
func (s *AuthService) ResolveIdentity(ctx context.Context, userID int64) (*dto.IdentityResponse, error) {
	profile, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.users.GetRole(ctx, userID)
	if err != nil {
		return nil, err
	}

	identity := &dto.IdentityResponse{
		Role:    role,
		Profile: profile,
		Menu:    models.MenuForRole(role),
	}

	if role == models.RoleFaculty {
		faculty, err := s.faculty.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		identity.FacultyProfile = faculty
	}

	return identity, nil
}

// UpdateProfile updates the caller's own profile fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	fieldErrs := apperrors.FieldErrors{}
	if !validation.ValidName(req.FirstName) {
		fieldErrs["firstName"] = "first name is required"
	}
	if !validation.ValidName(req.LastName) {
		fieldErrs["lastName"] = "last name is required"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	profile, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = strings.TrimSpace(req.FirstName)
	profile.LastName = strings.TrimSpace(req.LastName)
	profile.Phone = req.Phone
	profile.AvatarURL = req.AvatarURL

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
