package dto

// CreateCourseRequest is the payload for creating a course. Department
// and faculty links are optional; nil means unassigned.
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required" example:"CS101"`
	Name         string `json:"name" binding:"required" example:"Data Structures"`
	Semester     int    `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string `json:"academicYear" binding:"required" example:"2024-25"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6"`
	DepartmentID *int64 `json:"departmentId"`
	FacultyID    *int64 `json:"facultyId"`
}

// UpdateCourseRequest is the payload for updating a course
type UpdateCourseRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Semester     int    `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string `json:"academicYear" binding:"required"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6"`
	DepartmentID *int64 `json:"departmentId"`
	FacultyID    *int64 `json:"facultyId"`
}
