package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/dberrors"
)

// FacultyRepository handles database operations for faculty profiles
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

const facultySelectColumns = `
	f.id, f.profile_id, f.employee_id, f.designation, f.qualification,
	f.specialization, f.experience_years, f.department_id, f.date_of_joining,
	f.created_at, f.updated_at,
	p.id, p.user_id, p.first_name, p.last_name, p.email, p.phone,
	d.id, d.name, d.code
`

func scanFacultyRow(row pgx.Row) (*models.FacultyProfile, error) {
	var faculty models.FacultyProfile
	var profile models.Profile
	var deptID *int64
	var deptName, deptCode *string

	err := row.Scan(
		&faculty.ID,
		&faculty.ProfileID,
		&faculty.EmployeeID,
		&faculty.Designation,
		&faculty.Qualification,
		&faculty.Specialization,
		&faculty.ExperienceYears,
		&faculty.DepartmentID,
		&faculty.DateOfJoining,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
		&profile.ID,
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
		&profile.Phone,
		&deptID,
		&deptName,
		&deptCode,
	)
	if err != nil {
		return nil, err
	}

	faculty.Profile = &profile

	if deptID != nil {
		faculty.Department = &models.Department{
			ID:   *deptID,
			Name: *deptName,
			Code: *deptCode,
		}
	}

	return &faculty, nil
}

// Constraint names from the schema, used to tell duplicate errors apart
const (
	facultyProfileIDConstraint = "faculty_profiles_profile_id_key"
)

// Create inserts a new faculty profile. A unique violation on the
// profile link surfaces as ErrFacultyProfileExists, one on the
// employee id as ErrEmployeeIDExists.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.FacultyProfile) error {
	query := `
		INSERT INTO faculty_profiles
			(profile_id, employee_id, designation, qualification, specialization,
			 experience_years, department_id, date_of_joining)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		faculty.ProfileID, faculty.EmployeeID, faculty.Designation,
		faculty.Qualification, faculty.Specialization, faculty.ExperienceYears,
		faculty.DepartmentID, faculty.DateOfJoining).
		Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, facultyProfileIDConstraint) {
			return apperrors.ErrFacultyProfileExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmployeeIDExists
		}
		return fmt.Errorf("error creating faculty profile: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty profile by ID with profile and
// department joined in
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.FacultyProfile, error) {
	query := `
		SELECT ` + facultySelectColumns + `
		FROM faculty_profiles f
		JOIN profiles p ON p.id = f.profile_id
		LEFT JOIN departments d ON d.id = f.department_id
		WHERE f.id = $1
	`

	faculty, err := scanFacultyRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty profile: %w", err)
	}

	return faculty, nil
}

// GetByUserID retrieves the faculty profile linked to a user identity,
// used when resolving a faculty principal.
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	query := `
		SELECT ` + facultySelectColumns + `
		FROM faculty_profiles f
		JOIN profiles p ON p.id = f.profile_id
		LEFT JOIN departments d ON d.id = f.department_id
		WHERE p.user_id = $1
	`

	faculty, err := scanFacultyRow(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty profile: %w", err)
	}

	return faculty, nil
}

// List retrieves faculty profiles ordered by name. A non-empty search
// term matches employee id, first/last name, or department name as a
// case-insensitive substring.
func (r *FacultyRepository) List(ctx context.Context, search string) ([]*models.FacultyProfile, error) {
	query := `
		SELECT ` + facultySelectColumns + `
		FROM faculty_profiles f
		JOIN profiles p ON p.id = f.profile_id
		LEFT JOIN departments d ON d.id = f.department_id
		WHERE $1 = ''
			OR f.employee_id ILIKE '%' || $1 || '%'
			OR p.first_name ILIKE '%' || $1 || '%'
			OR p.last_name ILIKE '%' || $1 || '%'
			OR d.name ILIKE '%' || $1 || '%'
		ORDER BY p.first_name ASC, p.last_name ASC
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty profiles: %w", err)
	}
	defer rows.Close()

	var faculties []*models.FacultyProfile
	for rows.Next() {
		faculty, err := scanFacultyRow(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculties, nil
}

// Count returns the number of faculty profiles without retrieving rows
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty profiles: %w", err)
	}
	return count, nil
}

// Update updates an existing faculty profile
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.FacultyProfile) error {
	query := `
		UPDATE faculty_profiles
		SET employee_id = $1, designation = $2, qualification = $3,
			specialization = $4, experience_years = $5, department_id = $6,
			date_of_joining = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		faculty.EmployeeID, faculty.Designation, faculty.Qualification,
		faculty.Specialization, faculty.ExperienceYears, faculty.DepartmentID,
		faculty.DateOfJoining, faculty.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmployeeIDExists
		}
		return fmt.Errorf("error updating faculty profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete deletes a faculty profile by ID. Blocked by the backend while
// courses or quality metrics reference it.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_profiles WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyHasRelations
		}
		return fmt.Errorf("error deleting faculty profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
