package dto

// CreateDepartmentRequest is the payload for creating a department
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science"`
	Code string `json:"code" binding:"required" example:"CS"`
}

// UpdateDepartmentRequest is the payload for updating a department
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}
