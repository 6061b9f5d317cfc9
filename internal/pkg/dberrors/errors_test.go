package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(pgError("23505", "departments_code_key")) {
		t.Error("unique violation not detected")
	}
	if IsUniqueViolation(pgError("23503", "")) {
		t.Error("foreign key violation reported as unique")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("non-pg error reported as unique violation")
	}
}

func TestIsUniqueViolationWrapped(t *testing.T) {
	wrapped := fmt.Errorf("creating department: %w", pgError("23505", ""))
	if !IsUniqueViolation(wrapped) {
		t.Error("wrapped unique violation not detected")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(pgError("23503", "courses_department_id_fkey")) {
		t.Error("foreign key violation not detected")
	}
	if IsForeignKeyViolation(pgError("23505", "")) {
		t.Error("unique violation reported as foreign key")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := pgError("23505", "faculty_profiles_profile_id_key")

	if !IsDuplicateConstraintError(err, "faculty_profiles_profile_id_key") {
		t.Error("named constraint violation not detected")
	}
	if IsDuplicateConstraintError(err, "faculty_profiles_employee_id_key") {
		t.Error("matched a different constraint")
	}
	if IsDuplicateConstraintError(pgError("23503", "faculty_profiles_profile_id_key"), "faculty_profiles_profile_id_key") {
		t.Error("non-unique code matched by constraint name alone")
	}
}
