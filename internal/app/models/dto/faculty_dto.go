package dto

// CreateFacultyRequest creates a faculty profile for an existing
// profile. The department link is optional.
type CreateFacultyRequest struct {
	ProfileID       int64   `json:"profileId" binding:"required"`
	EmployeeID      string  `json:"employeeId" binding:"required" example:"EMP-0042"`
	Designation     string  `json:"designation" binding:"required" example:"Assistant Professor"`
	Qualification   *string `json:"qualification"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experienceYears"`
	DepartmentID    *int64  `json:"departmentId"`
	DateOfJoining   *string `json:"dateOfJoining" example:"2021-07-15"`
}

// UpdateFacultyRequest updates an existing faculty profile
type UpdateFacultyRequest struct {
	EmployeeID      string  `json:"employeeId" binding:"required"`
	Designation     string  `json:"designation" binding:"required"`
	Qualification   *string `json:"qualification"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experienceYears"`
	DepartmentID    *int64  `json:"departmentId"`
	DateOfJoining   *string `json:"dateOfJoining"`
}
