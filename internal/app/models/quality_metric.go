package models

import "time"

// QualityMetric is a precomputed aggregate per (faculty, course,
// semester, academic year). Rows are produced by the recalculation
// pass, never by the interactive submission path, and are read-only
// from the dashboard's perspective.
type QualityMetric struct {
	ID                 int64     `json:"id" db:"id"`
	FacultyID          int64     `json:"facultyId" db:"faculty_id"`
	CourseID           *int64    `json:"courseId,omitempty" db:"course_id"`
	Semester           string    `json:"semester" db:"semester"`
	AcademicYear       string    `json:"academicYear" db:"academic_year"`
	TeachingScore      float64   `json:"teachingScore" db:"teaching_score"`
	ContentScore       float64   `json:"contentScore" db:"content_score"`
	CommunicationScore float64   `json:"communicationScore" db:"communication_score"`
	PunctualityScore   float64   `json:"punctualityScore" db:"punctuality_score"`
	AvailabilityScore  float64   `json:"availabilityScore" db:"availability_score"`
	OverallScore       float64   `json:"overallScore" db:"overall_score"`
	TotalResponses     int       `json:"totalResponses" db:"total_responses"`
	CalculatedAt       time.Time `json:"calculatedAt" db:"calculated_at"`

	// Relations (populated when needed)
	Faculty *FacultyProfile `json:"faculty,omitempty"`
	Course  *Course         `json:"course,omitempty"`
}
