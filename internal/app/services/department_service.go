package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/pkg/validation"
)

// DepartmentStore is the persistence surface the department service needs
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, search string) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles department management
type DepartmentService struct {
	store DepartmentStore
}

// NewDepartmentService creates a new department service
func NewDepartmentService(store DepartmentStore) *DepartmentService {
	return &DepartmentService{
		store: store,
	}
}

func validateDepartmentFields(name, code string) (string, string, error) {
	fieldErrs := apperrors.FieldErrors{}

	name = strings.TrimSpace(name)
	if !validation.ValidName(name) {
		fieldErrs["name"] = fmt.Sprintf("name must be between %d and %d characters",
			validation.NameMinLength, validation.NameMaxLength)
	}

	code = validation.NormalizeCode(code)
	if !validation.ValidCode(code) {
		fieldErrs["code"] = "code must be alphanumeric and at most 20 characters"
	}

	if len(fieldErrs) > 0 {
		return "", "", fieldErrs
	}

	return name, code, nil
}

// Create validates and persists a new department. The code is
// uppercased before storage so uniqueness is case-insensitive.
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	name, code, err := validateDepartmentFields(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	department := &models.Department{
		Name: name,
		Code: code,
	}

	if err := s.store.Create(ctx, department); err != nil {
		return nil, err
	}

	logger.Info().Str("code", department.Code).Msg("Department created")

	return department, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves departments, optionally filtered by a search term
// matched against name and code.
func (s *DepartmentService) List(ctx context.Context, search string) ([]*models.Department, error) {
	departments, err := s.store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	if departments == nil {
		departments = []*models.Department{}
	}

	return departments, nil
}

// Update validates and updates an existing department
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	name, code, err := validateDepartmentFields(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	department, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = name
	department.Code = code

	if err := s.store.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete removes a department. Deletion is refused while courses or
// faculty profiles still reference it.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("departmentId", id).Msg("Department deleted")

	return nil
}
