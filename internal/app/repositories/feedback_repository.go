package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/edupulse/internal/app/models"
)

// FeedbackRepository handles database operations for student feedback.
// Feedback is create-only: no update or delete statements exist here.
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Insert records one anonymous feedback row
func (r *FeedbackRepository) Insert(ctx context.Context, feedback *models.StudentFeedback) error {
	query := `
		INSERT INTO student_feedback
			(course_id, teaching_quality, course_content, communication,
			 punctuality, availability, overall_rating, comments,
			 anonymous_token, semester, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.CourseID, feedback.TeachingQuality, feedback.CourseContent,
		feedback.Communication, feedback.Punctuality, feedback.Availability,
		feedback.OverallRating, feedback.Comments, feedback.AnonymousToken,
		feedback.Semester, feedback.AcademicYear).
		Scan(&feedback.ID, &feedback.SubmittedAt)
	if err != nil {
		return fmt.Errorf("error inserting feedback: %w", err)
	}

	return nil
}

func scanFeedbackRow(row pgx.Row) (*models.StudentFeedback, error) {
	var f models.StudentFeedback
	var course models.Course

	err := row.Scan(
		&f.ID,
		&f.CourseID,
		&f.TeachingQuality,
		&f.CourseContent,
		&f.Communication,
		&f.Punctuality,
		&f.Availability,
		&f.OverallRating,
		&f.Comments,
		&f.Semester,
		&f.AcademicYear,
		&f.SubmittedAt,
		&course.ID,
		&course.Code,
		&course.Name,
		&course.FacultyID,
	)
	if err != nil {
		return nil, err
	}

	f.Course = &course
	return &f, nil
}

const feedbackSelectQuery = `
	SELECT sf.id, sf.course_id, sf.teaching_quality, sf.course_content,
		sf.communication, sf.punctuality, sf.availability, sf.overall_rating,
		sf.comments, sf.semester, sf.academic_year, sf.submitted_at,
		c.id, c.code, c.name, c.faculty_id
	FROM student_feedback sf
	JOIN courses c ON c.id = sf.course_id
`

// List retrieves feedback rows joined with their course, newest first.
// A non-empty semester tag filters on the snapshotted semester string.
// The anonymous token is intentionally not selected.
func (r *FeedbackRepository) List(ctx context.Context, semester string) ([]*models.StudentFeedback, error) {
	query := feedbackSelectQuery + `
	WHERE $1 = '' OR sf.semester = $1
	ORDER BY sf.submitted_at DESC
	`

	rows, err := r.db.Query(ctx, query, semester)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var feedback []*models.StudentFeedback
	for rows.Next() {
		f, err := scanFeedbackRow(rows)
		if err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListAll retrieves every feedback row with course links, used by the
// metric recalculation pass.
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*models.StudentFeedback, error) {
	return r.List(ctx, "")
}

// Count returns the number of feedback rows without retrieving them
func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_feedback`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting feedback: %w", err)
	}
	return count, nil
}
