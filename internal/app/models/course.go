package models

import "time"

// Course represents a course offering. Department and assigned faculty
// links are optional.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Name         string    `json:"name" db:"name"`
	Semester     int       `json:"semester" db:"semester"`
	AcademicYear string    `json:"academicYear" db:"academic_year" example:"2024-25"`
	Credits      int       `json:"credits" db:"credits"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	FacultyID    *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department     `json:"department,omitempty"`
	Faculty    *FacultyProfile `json:"faculty,omitempty"`
}
