package models

import "time"

// FacultyProfile extends a Profile with employment attributes, based on
// the 'faculty_profiles' table. Exists only for identities holding the
// faculty role. The department link is optional; absence renders as
// unassigned, never as an error.
type FacultyProfile struct {
	ID              int64      `json:"id" db:"id"`
	ProfileID       int64      `json:"profileId" db:"profile_id"`
	EmployeeID      string     `json:"employeeId" db:"employee_id"`
	Designation     string     `json:"designation" db:"designation"`
	Qualification   *string    `json:"qualification,omitempty" db:"qualification"`
	Specialization  *string    `json:"specialization,omitempty" db:"specialization"`
	ExperienceYears *int       `json:"experienceYears,omitempty" db:"experience_years"`
	DepartmentID    *int64     `json:"departmentId,omitempty" db:"department_id"`
	DateOfJoining   *time.Time `json:"dateOfJoining,omitempty" db:"date_of_joining"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Profile    *Profile    `json:"profile,omitempty"`
	Department *Department `json:"department,omitempty"`
}
