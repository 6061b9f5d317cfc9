package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
)

func performRoleCheck(t *testing.T, role models.Role, hasRole bool, allowed ...models.Role) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if hasRole {
		c.Set(ContextRole, role)
	}

	RoleRequired(allowed...)(c)
	return w, c
}

func TestRoleRequiredDeniesRoleNone(t *testing.T) {
	tests := []struct {
		name    string
		allowed []models.Role
	}{
		{"admin only", []models.Role{models.RoleAdmin}},
		{"admin or faculty", []models.Role{models.RoleAdmin, models.RoleFaculty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := performRoleCheck(t, models.RoleNone, true, tt.allowed...)

			if !c.IsAborted() {
				t.Error("request was not aborted")
			}
			if w.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", w.Code)
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not an error envelope: %v", err)
			}
			if body.Error == nil || body.Error.Code != dto.ErrorCodeForbidden {
				t.Errorf("code = %v, want %v", body.Error, dto.ErrorCodeForbidden)
			}
		})
	}
}

func TestRoleRequiredDeniesMissingRole(t *testing.T) {
	w, c := performRoleCheck(t, models.RoleNone, false, models.RoleAdmin)

	if !c.IsAborted() {
		t.Error("request was not aborted")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRoleRequiredPassesMatchingRole(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		allowed []models.Role
	}{
		{"admin on admin route", models.RoleAdmin, []models.Role{models.RoleAdmin}},
		{"faculty on staff route", models.RoleFaculty, []models.Role{models.RoleAdmin, models.RoleFaculty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := performRoleCheck(t, tt.role, true, tt.allowed...)
			if c.IsAborted() {
				t.Error("matching role was rejected")
			}
		})
	}
}

func TestRoleRequiredEmptySetPassesAnyIdentity(t *testing.T) {
	_, c := performRoleCheck(t, models.RoleNone, true)
	if c.IsAborted() {
		t.Error("empty allowed set must pass any authenticated caller")
	}

	_, c = performRoleCheck(t, models.RoleNone, false)
	if c.IsAborted() {
		t.Error("empty allowed set must not inspect the role")
	}
}
