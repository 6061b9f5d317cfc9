package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edupulse/edupulse/internal/app/models"
)

type fixedCounter int64

func (c fixedCounter) Count(_ context.Context) (int64, error) {
	return int64(c), nil
}

type fakeFeedbackSource struct {
	rows     []*models.StudentFeedback
	count    int64
	countErr error
}

func (s *fakeFeedbackSource) List(_ context.Context, _ string) ([]*models.StudentFeedback, error) {
	return s.rows, nil
}

func (s *fakeFeedbackSource) Count(_ context.Context) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.count, nil
}

func TestDashboardSummary(t *testing.T) {
	feedback := &fakeFeedbackSource{
		rows: []*models.StudentFeedback{
			fb(4, 4, 4, 4, 4, 4),
			fb(5, 5, 5, 5, 5, 5),
		},
		count: 2,
	}
	svc := NewDashboardService(fixedCounter(3), fixedCounter(7), fixedCounter(4), feedback)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.Departments != 3 || summary.Courses != 7 || summary.Faculty != 4 {
		t.Errorf("entity counts = %d/%d/%d, want 3/7/4",
			summary.Departments, summary.Courses, summary.Faculty)
	}
	if summary.FeedbackCount != 2 {
		t.Errorf("feedback count = %d, want 2", summary.FeedbackCount)
	}
	if summary.AverageRating != 4.5 {
		t.Errorf("average rating = %v, want 4.5", summary.AverageRating)
	}
	if len(summary.Averages) != 5 {
		t.Errorf("expected five category averages, got %d", len(summary.Averages))
	}
}

func TestDashboardSummaryCountsWithoutRows(t *testing.T) {
	// The feedback count comes from COUNT(*), not from the fetched rows
	feedback := &fakeFeedbackSource{count: 42}
	svc := NewDashboardService(fixedCounter(0), fixedCounter(0), fixedCounter(0), feedback)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.FeedbackCount != 42 {
		t.Errorf("feedback count = %d, want 42", summary.FeedbackCount)
	}
	if summary.AverageRating != 0 {
		t.Errorf("average rating = %v, want 0 with no rows", summary.AverageRating)
	}
}

func TestDashboardSummaryPropagatesErrors(t *testing.T) {
	countErr := errors.New("count failed")
	feedback := &fakeFeedbackSource{countErr: countErr}
	svc := NewDashboardService(fixedCounter(1), fixedCounter(1), fixedCounter(1), feedback)

	if _, err := svc.Summary(context.Background()); !errors.Is(err, countErr) {
		t.Fatalf("error = %v, want %v", err, countErr)
	}
}
