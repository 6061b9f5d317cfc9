package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
)

type fakeFeedbackStore struct {
	inserted []*models.StudentFeedback
	rows     []*models.StudentFeedback
	listErr  error
}

func (s *fakeFeedbackStore) Insert(_ context.Context, feedback *models.StudentFeedback) error {
	feedback.ID = int64(len(s.inserted) + 1)
	feedback.SubmittedAt = time.Now()
	s.inserted = append(s.inserted, feedback)
	return nil
}

func (s *fakeFeedbackStore) List(_ context.Context, semester string) ([]*models.StudentFeedback, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if semester == "" {
		return s.rows, nil
	}
	var filtered []*models.StudentFeedback
	for _, f := range s.rows {
		if f.Semester == semester {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

type fakeCourseGetter struct {
	courses map[int64]*models.Course
}

func (g *fakeCourseGetter) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := g.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func newFeedbackFixture() (*FeedbackService, *fakeFeedbackStore) {
	store := &fakeFeedbackStore{}
	courses := &fakeCourseGetter{courses: map[int64]*models.Course{
		10: {ID: 10, Code: "CS101", Name: "Data Structures", Semester: 3, AcademicYear: "2024-25"},
	}}
	return NewFeedbackService(store, courses), store
}

func validRequest() *dto.SubmitFeedbackRequest {
	return &dto.SubmitFeedbackRequest{
		CourseID:        10,
		TeachingQuality: 5,
		CourseContent:   4,
		Communication:   5,
		Punctuality:     4,
		Availability:    5,
	}
}

func TestSubmitDerivesOverallRating(t *testing.T) {
	svc, _ := newFeedbackFixture()

	// Mean 4.6 rounds up to 5
	feedback, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if feedback.OverallRating != 5 {
		t.Errorf("overall rating = %d, want 5", feedback.OverallRating)
	}
}

func TestSubmitRoundsLowMeanDown(t *testing.T) {
	svc, _ := newFeedbackFixture()

	// Mean 1.4 rounds down to 1
	req := &dto.SubmitFeedbackRequest{
		CourseID:        10,
		TeachingQuality: 1,
		CourseContent:   1,
		Communication:   2,
		Punctuality:     2,
		Availability:    1,
	}

	feedback, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if feedback.OverallRating != 1 {
		t.Errorf("overall rating = %d, want 1", feedback.OverallRating)
	}
}

func TestSubmitSnapshotsCourseTerm(t *testing.T) {
	svc, _ := newFeedbackFixture()

	feedback, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if feedback.Semester != "Semester 3" {
		t.Errorf("semester = %q, want %q", feedback.Semester, "Semester 3")
	}
	if feedback.AcademicYear != "2024-25" {
		t.Errorf("academic year = %q, want %q", feedback.AcademicYear, "2024-25")
	}
}

func TestSubmitGeneratesUniqueTokens(t *testing.T) {
	svc, store := newFeedbackFixture()

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), validRequest()); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	seen := map[string]bool{}
	for _, f := range store.inserted {
		if f.AnonymousToken == "" {
			t.Fatal("anonymous token not set")
		}
		if seen[f.AnonymousToken] {
			t.Fatal("duplicate anonymous token")
		}
		seen[f.AnonymousToken] = true
	}
}

func TestSubmitRejectsOutOfRangeRatings(t *testing.T) {
	svc, store := newFeedbackFixture()

	req := validRequest()
	req.TeachingQuality = 0
	req.Availability = 6

	_, err := svc.Submit(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}

	var fieldErrs apperrors.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("error %T does not carry field details", err)
	}
	if _, ok := fieldErrs["teachingQuality"]; !ok {
		t.Error("missing field error for teachingQuality")
	}
	if _, ok := fieldErrs["availability"]; !ok {
		t.Error("missing field error for availability")
	}

	if len(store.inserted) != 0 {
		t.Error("invalid submission must not be stored")
	}
}

func TestSubmitRejectsLongComments(t *testing.T) {
	svc, _ := newFeedbackFixture()

	req := validRequest()
	req.Comments = strings.Repeat("x", 1001)

	_, err := svc.Submit(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestSubmitUnknownCourse(t *testing.T) {
	svc, _ := newFeedbackFixture()

	req := validRequest()
	req.CourseID = 999

	_, err := svc.Submit(context.Background(), req)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("error = %v, want ErrCourseNotFound", err)
	}
}

func TestSubmitOmitsEmptyComments(t *testing.T) {
	svc, store := newFeedbackFixture()

	if _, err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if store.inserted[0].Comments != nil {
		t.Error("empty comments should be stored as NULL")
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc, _ := newFeedbackFixture()

	feedback, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if feedback == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestAnalyticsBundlesDerivedViews(t *testing.T) {
	store := &fakeFeedbackStore{rows: []*models.StudentFeedback{
		fb(5, 5, 5, 5, 5, 5),
		fb(3, 3, 3, 3, 3, 3),
	}}
	svc := NewFeedbackService(store, &fakeCourseGetter{})

	analytics, err := svc.Analytics(context.Background(), "")
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}

	if analytics.TotalCount != 2 {
		t.Errorf("total count = %d, want 2", analytics.TotalCount)
	}
	if analytics.OverallRating != 4 {
		t.Errorf("overall rating = %v, want 4", analytics.OverallRating)
	}
	if len(analytics.Averages) != 5 {
		t.Errorf("expected 5 category averages, got %d", len(analytics.Averages))
	}
	if len(analytics.Distribution) != 2 {
		t.Errorf("expected 2 bands, got %d", len(analytics.Distribution))
	}
}
