package models

import "time"

// StudentFeedback is an anonymous rating submission tied only to a
// course. It deliberately carries no identity-linking field: the
// anonymous token is write-only randomness used to satisfy storage
// uniqueness, never for lookup back to a submitter. Rows are
// create-only; no update or delete path exists.
type StudentFeedback struct {
	ID              int64     `json:"id" db:"id"`
	CourseID        int64     `json:"courseId" db:"course_id"`
	TeachingQuality int       `json:"teachingQuality" db:"teaching_quality"`
	CourseContent   int       `json:"courseContent" db:"course_content"`
	Communication   int       `json:"communication" db:"communication"`
	Punctuality     int       `json:"punctuality" db:"punctuality"`
	Availability    int       `json:"availability" db:"availability"`
	OverallRating   int       `json:"overallRating" db:"overall_rating"`
	Comments        *string   `json:"comments,omitempty" db:"comments"`
	AnonymousToken  string    `json:"-" db:"anonymous_token"`
	Semester        string    `json:"semester" db:"semester" example:"Semester 3"`
	AcademicYear    string    `json:"academicYear" db:"academic_year" example:"2024-25"`
	SubmittedAt     time.Time `json:"submittedAt" db:"submitted_at"`

	// Relation (populated on list reads)
	Course *Course `json:"course,omitempty"`
}
