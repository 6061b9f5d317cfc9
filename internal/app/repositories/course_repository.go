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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseSelectColumns = `
	c.id, c.code, c.name, c.semester, c.academic_year, c.credits,
	c.department_id, c.faculty_id, c.created_at, c.updated_at,
	d.id, d.name, d.code,
	f.id, f.employee_id, f.designation,
	p.id, p.first_name, p.last_name
`

// scanCourseRow scans a joined course row, attaching department and
// faculty relations when the links are set.
func scanCourseRow(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var deptID *int64
	var deptName, deptCode *string
	var facID *int64
	var facEmployeeID, facDesignation *string
	var profileID *int64
	var firstName, lastName *string

	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Semester,
		&course.AcademicYear,
		&course.Credits,
		&course.DepartmentID,
		&course.FacultyID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&deptID,
		&deptName,
		&deptCode,
		&facID,
		&facEmployeeID,
		&facDesignation,
		&profileID,
		&firstName,
		&lastName,
	)
	if err != nil {
		return nil, err
	}

	if deptID != nil {
		course.Department = &models.Department{
			ID:   *deptID,
			Name: *deptName,
			Code: *deptCode,
		}
	}

	if facID != nil {
		faculty := &models.FacultyProfile{
			ID:          *facID,
			EmployeeID:  *facEmployeeID,
			Designation: *facDesignation,
		}
		if profileID != nil {
			faculty.ProfileID = *profileID
			faculty.Profile = &models.Profile{
				ID:        *profileID,
				FirstName: *firstName,
				LastName:  *lastName,
			}
		}
		course.Faculty = faculty
	}

	return &course, nil
}

// Create inserts a new course. A unique violation on the code surfaces
// as ErrCourseAlreadyExists.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, semester, academic_year, credits, department_id, faculty_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.Semester, course.AcademicYear,
		course.Credits, course.DepartmentID, course.FacultyID).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with department and faculty joined in
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses c
		LEFT JOIN departments d ON d.id = c.department_id
		LEFT JOIN faculty_profiles f ON f.id = c.faculty_id
		LEFT JOIN profiles p ON p.id = f.profile_id
		WHERE c.id = $1
	`

	course, err := scanCourseRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses ordered by code with department and faculty
// joined in for display. A non-empty search term matches course code,
// course name, or department name as a case-insensitive substring.
func (r *CourseRepository) List(ctx context.Context, search string) ([]*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses c
		LEFT JOIN departments d ON d.id = c.department_id
		LEFT JOIN faculty_profiles f ON f.id = c.faculty_id
		LEFT JOIN profiles p ON p.id = f.profile_id
		WHERE $1 = ''
			OR c.code ILIKE '%' || $1 || '%'
			OR c.name ILIKE '%' || $1 || '%'
			OR d.name ILIKE '%' || $1 || '%'
		ORDER BY c.code ASC
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourseRow(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Count returns the number of courses without retrieving rows
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, semester = $3, academic_year = $4,
			credits = $5, department_id = $6, faculty_id = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Name, course.Semester, course.AcademicYear,
		course.Credits, course.DepartmentID, course.FacultyID, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Blocked by the backend while feedback
// or quality metric rows reference it.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasRelations
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
