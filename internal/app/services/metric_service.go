package services

import (
	"context"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/pkg/logger"
)

// MetricStore is the persistence surface the metric service needs
type MetricStore interface {
	List(ctx context.Context, filter repositories.MetricFilter) ([]*models.QualityMetric, error)
	Upsert(ctx context.Context, metric *models.QualityMetric) error
}

// FeedbackLister retrieves feedback rows with course links attached
type FeedbackLister interface {
	ListAll(ctx context.Context) ([]*models.StudentFeedback, error)
}

// MetricService handles quality metric listing and recalculation
type MetricService struct {
	store    MetricStore
	feedback FeedbackLister
}

// NewMetricService creates a new metric service
func NewMetricService(store MetricStore, feedback FeedbackLister) *MetricService {
	return &MetricService{
		store:    store,
		feedback: feedback,
	}
}

// List retrieves quality metrics filtered by semester, academic year,
// and faculty.
func (s *MetricService) List(ctx context.Context, filter repositories.MetricFilter) ([]*models.QualityMetric, error) {
	metrics, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if metrics == nil {
		metrics = []*models.QualityMetric{}
	}

	return metrics, nil
}

// metricKey identifies one aggregation group. CourseID is zero only
// in theory; feedback always carries a course.
type metricKey struct {
	FacultyID    int64
	CourseID     int64
	Semester     string
	AcademicYear string
}

type metricAccumulator struct {
	teaching      int
	content       int
	communication int
	punctuality   int
	availability  int
	overall       int
	count         int
}

// Recalculate rebuilds the quality metric rows from the full feedback
// history. Feedback for courses without an assigned faculty member is
// left out; it has no one to attribute the scores to.
func (s *MetricService) Recalculate(ctx context.Context) (*dto.RecalculateMetricsResponse, error) {
	feedback, err := s.feedback.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[metricKey]*metricAccumulator{}
	order := []metricKey{}

	for _, f := range feedback {
		if f.Course == nil || f.Course.FacultyID == nil {
			continue
		}

		key := metricKey{
			FacultyID:    *f.Course.FacultyID,
			CourseID:     f.CourseID,
			Semester:     f.Semester,
			AcademicYear: f.AcademicYear,
		}

		acc, ok := groups[key]
		if !ok {
			acc = &metricAccumulator{}
			groups[key] = acc
			order = append(order, key)
		}

		acc.teaching += f.TeachingQuality
		acc.content += f.CourseContent
		acc.communication += f.Communication
		acc.punctuality += f.Punctuality
		acc.availability += f.Availability
		acc.overall += f.OverallRating
		acc.count++
	}

	written := 0
	for _, key := range order {
		acc := groups[key]
		n := float64(acc.count)

		courseID := key.CourseID
		metric := &models.QualityMetric{
			FacultyID:          key.FacultyID,
			CourseID:           &courseID,
			Semester:           key.Semester,
			AcademicYear:       key.AcademicYear,
			TeachingScore:      round2(float64(acc.teaching) / n),
			ContentScore:       round2(float64(acc.content) / n),
			CommunicationScore: round2(float64(acc.communication) / n),
			PunctualityScore:   round2(float64(acc.punctuality) / n),
			AvailabilityScore:  round2(float64(acc.availability) / n),
			OverallScore:       round2(float64(acc.overall) / n),
			TotalResponses:     acc.count,
		}

		if err := s.store.Upsert(ctx, metric); err != nil {
			return nil, err
		}
		written++
	}

	logger.Info().
		Int("metricsWritten", written).
		Int("feedbackRows", len(feedback)).
		Msg("Quality metrics recalculated")

	return &dto.RecalculateMetricsResponse{
		MetricsWritten: written,
		FeedbackRows:   len(feedback),
	}, nil
}
