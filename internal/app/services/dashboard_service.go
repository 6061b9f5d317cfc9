package services

import (
	"context"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
)

// Counter exposes a row count
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// FeedbackSource exposes feedback rows and their count
type FeedbackSource interface {
	List(ctx context.Context, semester string) ([]*models.StudentFeedback, error)
	Count(ctx context.Context) (int64, error)
}

// DashboardService assembles the summary view shown on the dashboard
// landing page.
type DashboardService struct {
	departments Counter
	courses     Counter
	faculty     Counter
	feedback    FeedbackSource
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(departments, courses, faculty Counter, feedback FeedbackSource) *DashboardService {
	return &DashboardService{
		departments: departments,
		courses:     courses,
		faculty:     faculty,
		feedback:    feedback,
	}
}

// Summary gathers entity counts and the derived rating views in one
// round trip for the client.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	departments, err := s.departments.Count(ctx)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, err
	}

	faculty, err := s.faculty.Count(ctx)
	if err != nil {
		return nil, err
	}

	feedbackCount, err := s.feedback.Count(ctx)
	if err != nil {
		return nil, err
	}

	feedback, err := s.feedback.List(ctx, "")
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		Departments:   departments,
		Courses:       courses,
		Faculty:       faculty,
		FeedbackCount: feedbackCount,
		AverageRating: OverallAverage(feedback),
		Averages:      CategoryAverages(feedback),
		Distribution:  RatingDistribution(feedback),
	}, nil
}
