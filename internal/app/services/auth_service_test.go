package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/auth"
)

type fakeUserStore struct {
	users    map[int64]*models.User
	profiles map[int64]*models.Profile
	roles    map[int64]models.Role
	nextID   int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    map[int64]*models.User{},
		profiles: map[int64]*models.Profile{},
		roles:    map[int64]models.Role{},
	}
}

func (s *fakeUserStore) CreateWithProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	profile.ID = s.nextID
	profile.UserID = user.ID
	s.users[user.ID] = user
	s.profiles[user.ID] = profile
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	now := time.Now()
	if user, ok := s.users[userID]; ok {
		user.LastLoginAt = &now
	}
	return nil
}

func (s *fakeUserStore) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, profile *models.Profile) error {
	if _, ok := s.profiles[profile.UserID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *fakeUserStore) GetRole(_ context.Context, userID int64) (models.Role, error) {
	role, ok := s.roles[userID]
	if !ok {
		return models.RoleNone, nil
	}
	return role, nil
}

type fakeTokenStore struct {
	tokens map[string]*repositories.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*repositories.RefreshToken{}}
}

func (s *fakeTokenStore) Store(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	s.tokens[token] = &repositories.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (s *fakeTokenStore) Get(_ context.Context, token string) (*repositories.RefreshToken, error) {
	rt, ok := s.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	if rt.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	return rt, nil
}

func (s *fakeTokenStore) Revoke(_ context.Context, token string) error {
	rt, ok := s.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.Revoked = true
	return nil
}

func (s *fakeTokenStore) RevokeAllForUser(_ context.Context, userID int64) error {
	for _, rt := range s.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}

type fakeFacultyResolver struct {
	byUser map[int64]*models.FacultyProfile
}

func (r *fakeFacultyResolver) GetByUserID(_ context.Context, userID int64) (*models.FacultyProfile, error) {
	faculty, ok := r.byUser[userID]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeTokenStore, *fakeFacultyResolver) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	faculty := &fakeFacultyResolver{byUser: map[int64]*models.FacultyProfile{}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "edupulse.test",
	})

	return NewAuthService(users, tokens, faculty, jwtService), users, tokens, faculty
}

func registerUser(t *testing.T, svc *AuthService, email string) *models.Profile {
	t.Helper()
	profile, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Asha",
		LastName:  "Iyer",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return profile
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, _, _ := newAuthFixture()

	profile := registerUser(t, svc, "asha.iyer@edupulse.edu")
	if profile.UserID == 0 {
		t.Fatal("profile not linked to a user")
	}

	// New registrations carry no role
	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.iyer@edupulse.edu",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if tokens.Role != models.RoleNone {
		t.Errorf("role = %q, want %q", tokens.Role, models.RoleNone)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("token pair incomplete")
	}

	if users.users[profile.UserID].LastLoginAt == nil {
		t.Error("last login not stamped")
	}
}

func TestLoginResolvesAssignedRole(t *testing.T) {
	svc, users, _, _ := newAuthFixture()

	profile := registerUser(t, svc, "admin@edupulse.edu")
	users.roles[profile.UserID] = models.RoleAdmin

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@edupulse.edu",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tokens.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", tokens.Role, models.RoleAdmin)
	}
}

func TestLoginWrongPasswordAndUnknownEmailCollapse(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	registerUser(t, svc, "asha.iyer@edupulse.edu")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.iyer@edupulse.edu",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@edupulse.edu",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	profile := registerUser(t, svc, "asha.iyer@edupulse.edu")
	users.users[profile.UserID].IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.iyer@edupulse.edu",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("error = %v, want ErrAccountDisabled", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, tokenStore, _ := newAuthFixture()
	registerUser(t, svc, "asha.iyer@edupulse.edu")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.iyer@edupulse.edu",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	rotated, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is revoked and cannot be replayed
	if _, err := svc.Refresh(context.Background(), tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("replayed token: error = %v, want ErrTokenRevoked", err)
	}

	if !tokenStore.tokens[tokens.RefreshToken].Revoked {
		t.Error("old token not marked revoked in store")
	}
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	svc, _, tokenStore, _ := newAuthFixture()
	profile := registerUser(t, svc, "asha.iyer@edupulse.edu")

	for i := 0; i < 2; i++ {
		if _, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "asha.iyer@edupulse.edu",
			Password: "password123",
		}); err != nil {
			t.Fatalf("Login() error = %v", err)
		}
	}

	if err := svc.Logout(context.Background(), profile.UserID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	for token, rt := range tokenStore.tokens {
		if !rt.Revoked {
			t.Errorf("token %s still live after logout", token)
		}
	}
}

func TestResolveIdentityMenus(t *testing.T) {
	svc, users, _, faculty := newAuthFixture()
	profile := registerUser(t, svc, "asha.iyer@edupulse.edu")

	// Unassigned role gets the unprivileged menu
	identity, err := svc.ResolveIdentity(context.Background(), profile.UserID)
	if err != nil {
		t.Fatalf("ResolveIdentity() error = %v", err)
	}
	if identity.Role != models.RoleNone || len(identity.Menu) != 1 {
		t.Errorf("unexpected identity for unassigned role: %+v", identity)
	}

	// Faculty role resolves the linked faculty profile
	users.roles[profile.UserID] = models.RoleFaculty
	faculty.byUser[profile.UserID] = &models.FacultyProfile{ID: 5, EmployeeID: "EMP-0042"}

	identity, err = svc.ResolveIdentity(context.Background(), profile.UserID)
	if err != nil {
		t.Fatalf("ResolveIdentity() error = %v", err)
	}
	if identity.FacultyProfile == nil || identity.FacultyProfile.EmployeeID != "EMP-0042" {
		t.Errorf("faculty profile not resolved: %+v", identity.FacultyProfile)
	}
	if len(identity.Menu) != 3 {
		t.Errorf("faculty menu has %d entries, want 3", len(identity.Menu))
	}
}

func TestResolveIdentityFacultyWithoutProfile(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	profile := registerUser(t, svc, "asha.iyer@edupulse.edu")
	users.roles[profile.UserID] = models.RoleFaculty

	// A faculty role without a matching faculty_profiles row is not an error
	identity, err := svc.ResolveIdentity(context.Background(), profile.UserID)
	if err != nil {
		t.Fatalf("ResolveIdentity() error = %v", err)
	}
	if identity.FacultyProfile != nil {
		t.Error("expected nil faculty profile")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "not-an-email",
		Password:  "short",
		FirstName: "",
		LastName:  "Iyer",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}

	var fieldErrs apperrors.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("error %T does not carry field details", err)
	}
	for _, field := range []string{"email", "password", "firstName"} {
		if _, ok := fieldErrs[field]; !ok {
			t.Errorf("missing field error for %s", field)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	registerUser(t, svc, "asha.iyer@edupulse.edu")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "asha.iyer@edupulse.edu",
		Password:  "password123",
		FirstName: "Asha",
		LastName:  "Iyer",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("error = %v, want ErrEmailAlreadyExists", err)
	}
}
