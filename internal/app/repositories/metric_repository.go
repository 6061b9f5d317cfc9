package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/edupulse/internal/app/models"
)

// MetricFilter narrows a quality metric listing. Zero values mean no
// filtering on that dimension.
type MetricFilter struct {
	Semester     string
	AcademicYear string
	FacultyID    int64
}

// MetricRepository handles database operations for quality metrics
type MetricRepository struct {
	db *pgxpool.Pool
}

// NewMetricRepository creates a new metric repository
func NewMetricRepository(db *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{
		db: db,
	}
}

// List retrieves quality metrics with faculty and course joined in,
// newest calculation first.
func (r *MetricRepository) List(ctx context.Context, filter MetricFilter) ([]*models.QualityMetric, error) {
	query := `
		SELECT qm.id, qm.faculty_id, qm.course_id, qm.semester, qm.academic_year,
			qm.teaching_score, qm.content_score, qm.communication_score,
			qm.punctuality_score, qm.availability_score, qm.overall_score,
			qm.total_responses, qm.calculated_at,
			f.id, f.employee_id, f.designation, f.profile_id,
			p.first_name, p.last_name,
			c.id, c.code, c.name
		FROM quality_metrics qm
		JOIN faculty_profiles f ON f.id = qm.faculty_id
		JOIN profiles p ON p.id = f.profile_id
		LEFT JOIN courses c ON c.id = qm.course_id
		WHERE ($1 = '' OR qm.semester = $1)
			AND ($2 = '' OR qm.academic_year = $2)
			AND ($3 = 0 OR qm.faculty_id = $3)
		ORDER BY qm.calculated_at DESC
	`

	rows, err := r.db.Query(ctx, query, filter.Semester, filter.AcademicYear, filter.FacultyID)
	if err != nil {
		return nil, fmt.Errorf("error listing quality metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*models.QualityMetric
	for rows.Next() {
		var m models.QualityMetric
		var faculty models.FacultyProfile
		var profile models.Profile
		var courseID *int64
		var courseCode, courseName *string

		if err := rows.Scan(
			&m.ID,
			&m.FacultyID,
			&m.CourseID,
			&m.Semester,
			&m.AcademicYear,
			&m.TeachingScore,
			&m.ContentScore,
			&m.CommunicationScore,
			&m.PunctualityScore,
			&m.AvailabilityScore,
			&m.OverallScore,
			&m.TotalResponses,
			&m.CalculatedAt,
			&faculty.ID,
			&faculty.EmployeeID,
			&faculty.Designation,
			&faculty.ProfileID,
			&profile.FirstName,
			&profile.LastName,
			&courseID,
			&courseCode,
			&courseName,
		); err != nil {
			return nil, err
		}

		faculty.Profile = &profile
		m.Faculty = &faculty

		if courseID != nil {
			m.Course = &models.Course{
				ID:   *courseID,
				Code: *courseCode,
				Name: *courseName,
			}
		}

		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metrics, nil
}

// Upsert writes one aggregate row keyed by (faculty, course, semester,
// academic year), replacing the previous calculation.
func (r *MetricRepository) Upsert(ctx context.Context, metric *models.QualityMetric) error {
	query := `
		INSERT INTO quality_metrics
			(faculty_id, course_id, semester, academic_year,
			 teaching_score, content_score, communication_score,
			 punctuality_score, availability_score, overall_score,
			 total_responses, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (faculty_id, course_id, semester, academic_year)
		DO UPDATE SET
			teaching_score = EXCLUDED.teaching_score,
			content_score = EXCLUDED.content_score,
			communication_score = EXCLUDED.communication_score,
			punctuality_score = EXCLUDED.punctuality_score,
			availability_score = EXCLUDED.availability_score,
			overall_score = EXCLUDED.overall_score,
			total_responses = EXCLUDED.total_responses,
			calculated_at = NOW()
		RETURNING id, calculated_at
	`

	err := r.db.QueryRow(ctx, query,
		metric.FacultyID, metric.CourseID, metric.Semester, metric.AcademicYear,
		metric.TeachingScore, metric.ContentScore, metric.CommunicationScore,
		metric.PunctualityScore, metric.AvailabilityScore, metric.OverallScore,
		metric.TotalResponses).
		Scan(&metric.ID, &metric.CalculatedAt)
	if err != nil {
		return fmt.Errorf("error upserting quality metric: %w", err)
	}

	return nil
}
