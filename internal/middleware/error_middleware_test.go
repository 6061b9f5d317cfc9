package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an error envelope: %v", err)
	}
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrDepartmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrEmployeeIDExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrFacultyProfileExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrDepartmentHasRelations, http.StatusConflict, dto.ErrorCodeResourceHasRelations},
		{apperrors.ErrFacultyHasRelations, http.StatusConflict, dto.ErrorCodeResourceHasRelations},
		{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{fmt.Errorf("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w, body := performWithError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", body.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading department: %w", apperrors.ErrDepartmentNotFound)
	w, body := performWithError(t, wrapped)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if body.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("code = %v, want RES_001", body.Error.Code)
	}
}

func TestHandleAPIErrorFieldErrors(t *testing.T) {
	fieldErrs := apperrors.FieldErrors{
		"semester": "semester must be between 1 and 8",
		"credits":  "credits must be between 1 and 6",
	}

	w, body := performWithError(t, fieldErrs)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("code = %v, want VAL_001", body.Error.Code)
	}

	details, ok := body.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %T, want per-field map", body.Error.Details)
	}
	if _, ok := details["semester"]; !ok {
		t.Error("missing semester detail")
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := performWithError(t, fmt.Errorf("pq: connection refused at 10.0.0.3"))

	if body.Error.Message != "An unexpected error occurred" {
		t.Errorf("internal error leaked: %q", body.Error.Message)
	}
}
