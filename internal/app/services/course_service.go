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

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, search string) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentGetter resolves a department by ID
type DepartmentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// FacultyGetter resolves a faculty profile by ID
type FacultyGetter interface {
	GetByID(ctx context.Context, id int64) (*models.FacultyProfile, error)
}

// CourseService handles course management
type CourseService struct {
	store       CourseStore
	departments DepartmentGetter
	faculty     FacultyGetter
}

// NewCourseService creates a new course service
func NewCourseService(store CourseStore, departments DepartmentGetter, faculty FacultyGetter) *CourseService {
	return &CourseService{
		store:       store,
		departments: departments,
		faculty:     faculty,
	}
}

type courseFields struct {
	Code         string
	Name         string
	Semester     int
	AcademicYear string
	Credits      int
	DepartmentID *int64
	FacultyID    *int64
}

func validateCourseFields(f courseFields) (courseFields, error) {
	fieldErrs := apperrors.FieldErrors{}

	f.Name = strings.TrimSpace(f.Name)
	if !validation.ValidName(f.Name) {
		fieldErrs["name"] = fmt.Sprintf("name must be between %d and %d characters",
			validation.NameMinLength, validation.NameMaxLength)
	}

	f.Code = validation.NormalizeCode(f.Code)
	if !validation.ValidCode(f.Code) {
		fieldErrs["code"] = "code must be alphanumeric and at most 20 characters"
	}

	if !validation.ValidSemester(f.Semester) {
		fieldErrs["semester"] = fmt.Sprintf("semester must be between %d and %d",
			validation.SemesterMin, validation.SemesterMax)
	}

	if !validation.ValidCredits(f.Credits) {
		fieldErrs["credits"] = fmt.Sprintf("credits must be between %d and %d",
			validation.CreditsMin, validation.CreditsMax)
	}

	f.AcademicYear = strings.TrimSpace(f.AcademicYear)
	if f.AcademicYear == "" {
		fieldErrs["academicYear"] = "academic year is required"
	}

	if len(fieldErrs) > 0 {
		return courseFields{}, fieldErrs
	}

	return f, nil
}

// checkCourseLinks verifies that the optional department and faculty
// references point at existing rows before the insert or update runs.
func (s *CourseService) checkCourseLinks(ctx context.Context, departmentID, facultyID *int64) error {
	if departmentID != nil {
		if _, err := s.departments.GetByID(ctx, *departmentID); err != nil {
			return err
		}
	}

	if facultyID != nil {
		if _, err := s.faculty.GetByID(ctx, *facultyID); err != nil {
			return err
		}
	}

	return nil
}

// Create validates and persists a new course
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	fields, err := validateCourseFields(courseFields{
		Code:         req.Code,
		Name:         req.Name,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Credits:      req.Credits,
		DepartmentID: req.DepartmentID,
		FacultyID:    req.FacultyID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkCourseLinks(ctx, fields.DepartmentID, fields.FacultyID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Code:         fields.Code,
		Name:         fields.Name,
		Semester:     fields.Semester,
		AcademicYear: fields.AcademicYear,
		Credits:      fields.Credits,
		DepartmentID: fields.DepartmentID,
		FacultyID:    fields.FacultyID,
	}

	if err := s.store.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Str("code", course.Code).Msg("Course created")

	return s.store.GetByID(ctx, course.ID)
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves courses, optionally filtered by a search term matched
// against course code, course name, and department name.
func (s *CourseService) List(ctx context.Context, search string) ([]*models.Course, error) {
	courses, err := s.store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	return courses, nil
}

// Update validates and updates an existing course
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	fields, err := validateCourseFields(courseFields{
		Code:         req.Code,
		Name:         req.Name,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Credits:      req.Credits,
		DepartmentID: req.DepartmentID,
		FacultyID:    req.FacultyID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkCourseLinks(ctx, fields.DepartmentID, fields.FacultyID); err != nil {
		return nil, err
	}

	course, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Code = fields.Code
	course.Name = fields.Name
	course.Semester = fields.Semester
	course.AcademicYear = fields.AcademicYear
	course.Credits = fields.Credits
	course.DepartmentID = fields.DepartmentID
	course.FacultyID = fields.FacultyID

	if err := s.store.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a course. Deletion is refused while feedback or
// quality metrics still reference it.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("courseId", id).Msg("Course deleted")

	return nil
}
