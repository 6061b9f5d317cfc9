package services

import (
	"context"
	"strings"
	"time"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/pkg/validation"
)

// FacultyStore is the persistence surface the faculty service needs
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.FacultyProfile) error
	GetByID(ctx context.Context, id int64) (*models.FacultyProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	List(ctx context.Context, search string) ([]*models.FacultyProfile, error)
	Update(ctx context.Context, faculty *models.FacultyProfile) error
	Delete(ctx context.Context, id int64) error
}

// FacultyService handles faculty profile management
type FacultyService struct {
	store       FacultyStore
	departments DepartmentGetter
}

// NewFacultyService creates a new faculty service
func NewFacultyService(store FacultyStore, departments DepartmentGetter) *FacultyService {
	return &FacultyService{
		store:       store,
		departments: departments,
	}
}

// parseJoiningDate parses the optional date-of-joining string. Dates
// use the ISO 8601 calendar date form.
func parseJoiningDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		return nil, apperrors.FieldErrors{
			"dateOfJoining": "date must use the YYYY-MM-DD format",
		}
	}

	return &t, nil
}

func validateFacultyFields(employeeID, designation string, experienceYears *int) (string, string, error) {
	fieldErrs := apperrors.FieldErrors{}

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || len(employeeID) > validation.CodeMaxLength {
		fieldErrs["employeeId"] = "employee id is required and must be at most 20 characters"
	}

	designation = strings.TrimSpace(designation)
	if !validation.ValidName(designation) {
		fieldErrs["designation"] = "designation is required"
	}

	if experienceYears != nil && (*experienceYears < 0 || *experienceYears > 60) {
		fieldErrs["experienceYears"] = "experience years must be between 0 and 60"
	}

	if len(fieldErrs) > 0 {
		return "", "", fieldErrs
	}

	return employeeID, designation, nil
}

// Create validates and persists a new faculty profile linked to an
// existing people profile.
func (s *FacultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.FacultyProfile, error) {
	employeeID, designation, err := validateFacultyFields(req.EmployeeID, req.Designation, req.ExperienceYears)
	if err != nil {
		return nil, err
	}

	dateOfJoining, err := parseJoiningDate(req.DateOfJoining)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	faculty := &models.FacultyProfile{
		ProfileID:       req.ProfileID,
		EmployeeID:      employeeID,
		Designation:     designation,
		Qualification:   req.Qualification,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		DepartmentID:    req.DepartmentID,
		DateOfJoining:   dateOfJoining,
	}

	if err := s.store.Create(ctx, faculty); err != nil {
		return nil, err
	}

	logger.Info().Str("employeeId", faculty.EmployeeID).Msg("Faculty profile created")

	return s.store.GetByID(ctx, faculty.ID)
}

// GetByID retrieves a faculty profile by ID
func (s *FacultyService) GetByID(ctx context.Context, id int64) (*models.FacultyProfile, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves faculty profiles, optionally filtered by a search
// term matched against employee id, name, and department.
func (s *FacultyService) List(ctx context.Context, search string) ([]*models.FacultyProfile, error) {
	faculty, err := s.store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	if faculty == nil {
		faculty = []*models.FacultyProfile{}
	}

	return faculty, nil
}

// Update validates and updates an existing faculty profile. The
// profile link is fixed at creation and cannot be reassigned.
func (s *FacultyService) Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.FacultyProfile, error) {
	employeeID, designation, err := validateFacultyFields(req.EmployeeID, req.Designation, req.ExperienceYears)
	if err != nil {
		return nil, err
	}

	dateOfJoining, err := parseJoiningDate(req.DateOfJoining)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	faculty, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faculty.EmployeeID = employeeID
	faculty.Designation = designation
	faculty.Qualification = req.Qualification
	faculty.Specialization = req.Specialization
	faculty.ExperienceYears = req.ExperienceYears
	faculty.DepartmentID = req.DepartmentID
	faculty.DateOfJoining = dateOfJoining

	if err := s.store.Update(ctx, faculty); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a faculty profile. Deletion is refused while courses
// or quality metrics still reference it.
func (s *FacultyService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("facultyId", id).Msg("Faculty profile deleted")

	return nil
}
